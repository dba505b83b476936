package controllers

import (
	"net/http"

	"github.com/techstore/storefront-backend/api/middleware"
	"github.com/techstore/storefront-backend/api/responses"
	"github.com/techstore/storefront-backend/api/validators"
	"github.com/techstore/storefront-backend/internal/cart"
	apperrors "github.com/techstore/storefront-backend/pkg/errors"
)

type addToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

func GetCart(svc cart.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := middleware.SessionIDFromContext(r.Context())
		if !ok {
			responses.WriteError(w, apperrors.New(apperrors.CodeUnauthorized, "authentication required"))
			return
		}

		contents, err := svc.Fetch(r.Context(), sid)
		if err != nil {
			responses.WriteError(w, err)
			return
		}

		responses.WriteSuccess(w, http.StatusOK, contents)
	}
}

func AddToCart(svc cart.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sid, ok := middleware.SessionIDFromContext(r.Context())
		if !ok {
			responses.WriteError(w, apperrors.New(apperrors.CodeUnauthorized, "authentication required"))
			return
		}

		var input addToCartRequest
		if err := validators.DecodeJSONBody(w, r, &input); err != nil {
			responses.WriteError(w, err)
			return
		}

		if err := svc.Add(r.Context(), sid, input.ProductID, input.Quantity); err != nil {
			responses.WriteError(w, err)
			return
		}

		responses.WriteSuccess(w, http.StatusOK, nil)
	}
}
