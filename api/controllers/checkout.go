package controllers

import (
	"net/http"

	"github.com/techstore/storefront-backend/api/middleware"
	"github.com/techstore/storefront-backend/api/responses"
	"github.com/techstore/storefront-backend/api/validators"
	"github.com/techstore/storefront-backend/internal/cart"
	"github.com/techstore/storefront-backend/internal/checkout"
	apperrors "github.com/techstore/storefront-backend/pkg/errors"
	"github.com/techstore/storefront-backend/pkg/logger"
)

// Checkout places the order from the session cart, then empties the
// cart. A failed order leaves the cart untouched.
func Checkout(svc checkout.Service, carts cart.Service, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			responses.WriteError(w, apperrors.New(apperrors.CodeUnauthorized, "authentication required"))
			return
		}
		sid, ok := middleware.SessionIDFromContext(r.Context())
		if !ok {
			responses.WriteError(w, apperrors.New(apperrors.CodeUnauthorized, "authentication required"))
			return
		}

		var input checkout.Input
		if err := validators.DecodeJSONBody(w, r, &input); err != nil {
			responses.WriteError(w, err)
			return
		}

		lines, err := carts.Lines(r.Context(), sid)
		if err != nil {
			responses.WriteError(w, err)
			return
		}

		order, err := svc.Execute(r.Context(), userID, lines, input)
		if err != nil {
			responses.WriteError(w, err)
			return
		}

		if err := carts.Clear(r.Context(), sid); err != nil {
			// The order exists; an uncleared cart is recoverable.
			log.Error(r.Context(), "clearing cart after checkout", err)
		}

		responses.WriteSuccess(w, http.StatusCreated, order)
	}
}
