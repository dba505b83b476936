package reviews

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techstore/storefront-backend/pkg/db/models"
	apperrors "github.com/techstore/storefront-backend/pkg/errors"
	"github.com/techstore/storefront-backend/pkg/logger"
)

type productChecker interface {
	FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

type CreateInput struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

type Service interface {
	Create(ctx context.Context, userID, productID string, input CreateInput) (*models.Review, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]models.Review, error)
	List(ctx context.Context) ([]models.Review, error)
}

type service struct {
	repo     Repository
	products productChecker
	log      *logger.Logger
}

func NewService(repo Repository, products productChecker, log *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("reviews repository is required")
	}
	if products == nil {
		return nil, fmt.Errorf("product checker is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &service{repo: repo, products: products, log: log}, nil
}

// Create stores a review. Users are not limited to one review per
// product.
func (s *service) Create(ctx context.Context, userID, productID string, input CreateInput) (*models.Review, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeValidation, "invalid user id")
	}

	pid, err := uuid.Parse(productID)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeValidation, "invalid product id")
	}

	if input.Rating < 1 || input.Rating > 5 {
		return nil, apperrors.New(apperrors.CodeValidation, "rating must be between 1 and 5")
	}

	if _, err := s.products.FindProductByID(ctx, pid); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "product not found")
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "loading product")
	}

	review := &models.Review{
		ProductID: pid,
		UserID:    uid,
		Rating:    input.Rating,
		Comment:   input.Comment,
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "creating review")
	}

	return review, nil
}

func (s *service) ListByProduct(ctx context.Context, productID uuid.UUID) ([]models.Review, error) {
	reviews, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "listing reviews")
	}
	return reviews, nil
}

func (s *service) List(ctx context.Context) ([]models.Review, error) {
	reviews, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "listing reviews")
	}
	return reviews, nil
}
