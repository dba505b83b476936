package middleware

import (
	"net/http"

	"github.com/techstore/storefront-backend/api/responses"
	"github.com/techstore/storefront-backend/pkg/auth"
	"github.com/techstore/storefront-backend/pkg/auth/session"
	"github.com/techstore/storefront-backend/pkg/config"
	apperrors "github.com/techstore/storefront-backend/pkg/errors"
	"github.com/techstore/storefront-backend/pkg/logger"
)

// Authenticate requires a valid session cookie whose server-side record
// still exists. Logged-out tokens fail even before they expire.
func Authenticate(cfg config.SessionConfig, sessions *session.Manager, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cfg.CookieName)
			if err != nil || cookie.Value == "" {
				responses.WriteError(w, apperrors.New(apperrors.CodeUnauthorized, "authentication required"))
				return
			}

			payload, err := auth.ParseSessionToken(cfg, cookie.Value)
			if err != nil {
				log.Warn(log.WithField(r.Context(), "reason", err.Error()), "rejected session token")
				responses.WriteError(w, apperrors.New(apperrors.CodeUnauthorized, "authentication required"))
				return
			}

			alive, err := sessions.HasSession(r.Context(), payload.SID)
			if err != nil {
				responses.WriteError(w, apperrors.Wrap(apperrors.CodeDependency, err, "session store unavailable"))
				return
			}
			if !alive {
				responses.WriteError(w, apperrors.New(apperrors.CodeUnauthorized, "authentication required"))
				return
			}

			ctx := withIdentity(r.Context(), payload)
			ctx = log.WithUserID(ctx, payload.UserID)
			ctx = log.WithSessionID(ctx, payload.SID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
