package controllers

import (
	"net/http"

	"github.com/techstore/storefront-backend/api/middleware"
	"github.com/techstore/storefront-backend/api/responses"
	"github.com/techstore/storefront-backend/api/validators"
	"github.com/techstore/storefront-backend/internal/accounts"
	"github.com/techstore/storefront-backend/pkg/auth"
	"github.com/techstore/storefront-backend/pkg/auth/session"
	"github.com/techstore/storefront-backend/pkg/config"
	apperrors "github.com/techstore/storefront-backend/pkg/errors"
	"github.com/techstore/storefront-backend/pkg/logger"
)

func setSessionCookie(w http.ResponseWriter, cfg config.SessionConfig, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cfg.TTL().Seconds()),
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter, cfg config.SessionConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func Register(svc accounts.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input accounts.RegisterInput
		if err := validators.DecodeJSONBody(w, r, &input); err != nil {
			responses.WriteError(w, err)
			return
		}

		user, err := svc.Register(r.Context(), input)
		if err != nil {
			responses.WriteError(w, err)
			return
		}

		responses.WriteSuccess(w, http.StatusCreated, user)
	}
}

// Login verifies credentials, creates the server-side session with an
// empty cart and hands the signed token back in a cookie.
func Login(svc accounts.Service, sessions *session.Manager, cfg config.SessionConfig, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input accounts.LoginInput
		if err := validators.DecodeJSONBody(w, r, &input); err != nil {
			responses.WriteError(w, err)
			return
		}

		user, err := svc.Login(r.Context(), input)
		if err != nil {
			responses.WriteError(w, err)
			return
		}

		sid, err := sessions.Create(r.Context(), session.Data{
			UserID:   user.ID.String(),
			Username: user.Username,
			IsAdmin:  user.IsAdmin,
		})
		if err != nil {
			responses.WriteError(w, apperrors.Wrap(apperrors.CodeDependency, err, "creating session"))
			return
		}

		token, err := auth.MintSessionToken(cfg, user.ID.String(), user.Username, user.IsAdmin, sid)
		if err != nil {
			responses.WriteError(w, apperrors.Wrap(apperrors.CodeInternal, err, "minting session token"))
			return
		}

		setSessionCookie(w, cfg, token)
		log.Info(log.WithUserID(r.Context(), user.ID.String()), "user logged in")
		responses.WriteSuccess(w, http.StatusOK, user)
	}
}

func Logout(sessions *session.Manager, cfg config.SessionConfig, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sid, ok := middleware.SessionIDFromContext(r.Context()); ok {
			if err := sessions.Destroy(r.Context(), sid); err != nil {
				responses.WriteError(w, apperrors.Wrap(apperrors.CodeDependency, err, "destroying session"))
				return
			}
		}

		clearSessionCookie(w, cfg)
		ctx := r.Context()
		if username, ok := middleware.UsernameFromContext(ctx); ok {
			ctx = log.WithField(ctx, "username", username)
		}
		log.Info(ctx, "user logged out")
		responses.WriteSuccess(w, http.StatusOK, nil)
	}
}
