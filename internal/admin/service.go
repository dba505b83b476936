package admin

import (
	"context"
	"fmt"

	"github.com/techstore/storefront-backend/pkg/db/models"
	apperrors "github.com/techstore/storefront-backend/pkg/errors"
	"github.com/techstore/storefront-backend/pkg/logger"
)

const recentOrderCount = 5

type userCounter interface {
	Count(ctx context.Context) (int64, error)
}

type productCounter interface {
	CountProducts(ctx context.Context) (int64, error)
}

type orderReader interface {
	Count(ctx context.Context) (int64, error)
	Recent(ctx context.Context, limit int) ([]models.Order, error)
}

type reviewCounter interface {
	Count(ctx context.Context) (int64, error)
}

// Dashboard is the back office landing payload.
type Dashboard struct {
	UserCount    int64          `json:"user_count"`
	ProductCount int64          `json:"product_count"`
	OrderCount   int64          `json:"order_count"`
	ReviewCount  int64          `json:"review_count"`
	RecentOrders []models.Order `json:"recent_orders"`
}

type Service interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
}

type service struct {
	users    userCounter
	products productCounter
	orders   orderReader
	reviews  reviewCounter
	log      *logger.Logger
}

func NewService(users userCounter, products productCounter, orders orderReader, reviews reviewCounter, log *logger.Logger) (Service, error) {
	if users == nil {
		return nil, fmt.Errorf("user counter is required")
	}
	if products == nil {
		return nil, fmt.Errorf("product counter is required")
	}
	if orders == nil {
		return nil, fmt.Errorf("order reader is required")
	}
	if reviews == nil {
		return nil, fmt.Errorf("review counter is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &service{users: users, products: products, orders: orders, reviews: reviews, log: log}, nil
}

func (s *service) Dashboard(ctx context.Context) (*Dashboard, error) {
	userCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "counting users")
	}

	productCount, err := s.products.CountProducts(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "counting products")
	}

	orderCount, err := s.orders.Count(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "counting orders")
	}

	reviewCount, err := s.reviews.Count(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "counting reviews")
	}

	recent, err := s.orders.Recent(ctx, recentOrderCount)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "listing recent orders")
	}

	return &Dashboard{
		UserCount:    userCount,
		ProductCount: productCount,
		OrderCount:   orderCount,
		ReviewCount:  reviewCount,
		RecentOrders: recent,
	}, nil
}
