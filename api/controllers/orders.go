package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/techstore/storefront-backend/api/middleware"
	"github.com/techstore/storefront-backend/api/responses"
	"github.com/techstore/storefront-backend/internal/orders"
	apperrors "github.com/techstore/storefront-backend/pkg/errors"
)

func ListOrders(svc orders.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			responses.WriteError(w, apperrors.New(apperrors.CodeUnauthorized, "authentication required"))
			return
		}

		list, err := svc.ListForUser(r.Context(), userID)
		if err != nil {
			responses.WriteError(w, err)
			return
		}

		responses.WriteSuccess(w, http.StatusOK, list)
	}
}

func GetOrder(svc orders.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			responses.WriteError(w, apperrors.New(apperrors.CodeUnauthorized, "authentication required"))
			return
		}

		order, err := svc.GetForUser(
			r.Context(),
			userID,
			chi.URLParam(r, "orderID"),
			middleware.IsAdminFromContext(r.Context()),
		)
		if err != nil {
			responses.WriteError(w, err)
			return
		}

		responses.WriteSuccess(w, http.StatusOK, order)
	}
}
