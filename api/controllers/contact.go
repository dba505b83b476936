package controllers

import (
	"net/http"

	"github.com/techstore/storefront-backend/api/responses"
	"github.com/techstore/storefront-backend/api/validators"
	"github.com/techstore/storefront-backend/internal/contact"
)

func SubmitContact(svc contact.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input contact.SubmitInput
		if err := validators.DecodeJSONBody(w, r, &input); err != nil {
			responses.WriteError(w, err)
			return
		}
		input.Message = validators.SanitizeString(input.Message)

		message, err := svc.Submit(r.Context(), input)
		if err != nil {
			responses.WriteError(w, err)
			return
		}

		responses.WriteSuccess(w, http.StatusCreated, message)
	}
}
