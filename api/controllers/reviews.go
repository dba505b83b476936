package controllers

import (
	"net/http"

	"github.com/techstore/storefront-backend/api/middleware"
	"github.com/techstore/storefront-backend/api/responses"
	"github.com/techstore/storefront-backend/api/validators"
	"github.com/techstore/storefront-backend/internal/reviews"
	apperrors "github.com/techstore/storefront-backend/pkg/errors"
)

type createReviewRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment" validate:"max=2000"`
}

func CreateReview(svc reviews.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			responses.WriteError(w, apperrors.New(apperrors.CodeUnauthorized, "authentication required"))
			return
		}

		var body createReviewRequest
		if err := validators.DecodeJSONBody(w, r, &body); err != nil {
			responses.WriteError(w, err)
			return
		}

		review, err := svc.Create(r.Context(), userID, body.ProductID, reviews.CreateInput{
			Rating:  body.Rating,
			Comment: validators.SanitizeString(body.Comment),
		})
		if err != nil {
			responses.WriteError(w, err)
			return
		}

		responses.WriteSuccess(w, http.StatusCreated, review)
	}
}

func AdminListReviews(svc reviews.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(w, err)
			return
		}

		responses.WriteSuccess(w, http.StatusOK, list)
	}
}
