package controllers

import (
	"net/http"

	"github.com/techstore/storefront-backend/api/responses"
	"github.com/techstore/storefront-backend/api/validators"
	"github.com/techstore/storefront-backend/internal/newsletter"
	apperrors "github.com/techstore/storefront-backend/pkg/errors"
)

func SubscribeNewsletter(svc newsletter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input newsletter.SubscribeInput
		if err := validators.DecodeJSONBody(w, r, &input); err != nil {
			responses.WriteError(w, err)
			return
		}

		subscriber, err := svc.Subscribe(r.Context(), input)
		if err != nil {
			responses.WriteError(w, err)
			return
		}

		responses.WriteSuccess(w, http.StatusCreated, subscriber)
	}
}

// NewsletterPreferences looks up a subscription by email query param.
func NewsletterPreferences(svc newsletter.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := validators.SanitizeString(r.URL.Query().Get("email"))
		if email == "" {
			responses.WriteError(w, apperrors.New(apperrors.CodeValidation, "email parameter is required"))
			return
		}

		subscriber, err := svc.PreferencesByEmail(r.Context(), email)
		if err != nil {
			responses.WriteError(w, err)
			return
		}

		responses.WriteSuccess(w, http.StatusOK, subscriber)
	}
}
