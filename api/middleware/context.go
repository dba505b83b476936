package middleware

import (
	"context"

	"github.com/techstore/storefront-backend/pkg/auth"
)

type contextKey string

const (
	userIDKey    contextKey = "user_id"
	usernameKey  contextKey = "username"
	isAdminKey   contextKey = "is_admin"
	sessionIDKey contextKey = "session_id"
)

func withIdentity(ctx context.Context, payload *auth.SessionTokenPayload) context.Context {
	ctx = context.WithValue(ctx, userIDKey, payload.UserID)
	ctx = context.WithValue(ctx, usernameKey, payload.Username)
	ctx = context.WithValue(ctx, isAdminKey, payload.IsAdmin)
	ctx = context.WithValue(ctx, sessionIDKey, payload.SID)
	return ctx
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

func UsernameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(usernameKey).(string)
	return name, ok && name != ""
}

func IsAdminFromContext(ctx context.Context) bool {
	isAdmin, ok := ctx.Value(isAdminKey).(bool)
	return ok && isAdmin
}

func SessionIDFromContext(ctx context.Context) (string, bool) {
	sid, ok := ctx.Value(sessionIDKey).(string)
	return sid, ok && sid != ""
}
