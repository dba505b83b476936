package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/techstore/storefront-backend/pkg/auth/session"
	"github.com/techstore/storefront-backend/pkg/db/models"
	apperrors "github.com/techstore/storefront-backend/pkg/errors"
	"github.com/techstore/storefront-backend/pkg/logger"
)

type sessionCarts interface {
	Get(ctx context.Context, sid string) (*session.Data, error)
	SaveCart(ctx context.Context, sid string, cart []session.Line) error
}

type productLoader interface {
	FindProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// Line is a cart entry joined with its current product record.
type Line struct {
	Product  models.Product  `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type Cart struct {
	Lines []Line          `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

type Service interface {
	Add(ctx context.Context, sid, productID string, quantity int) error
	Fetch(ctx context.Context, sid string) (*Cart, error)
	Lines(ctx context.Context, sid string) ([]session.Line, error)
	Clear(ctx context.Context, sid string) error
}

type service struct {
	sessions sessionCarts
	products productLoader
	log      *logger.Logger
}

func NewService(sessions sessionCarts, products productLoader, log *logger.Logger) (Service, error) {
	if sessions == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if products == nil {
		return nil, fmt.Errorf("product loader is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &service{sessions: sessions, products: products, log: log}, nil
}

// Add merges the line into the session cart. Product existence is not
// verified here; Fetch and checkout resolve lines against live rows.
func (s *service) Add(ctx context.Context, sid, productID string, quantity int) error {
	id, err := uuid.Parse(productID)
	if err != nil {
		return apperrors.New(apperrors.CodeValidation, "invalid product id")
	}
	if quantity <= 0 {
		return apperrors.New(apperrors.CodeValidation, "quantity must be positive")
	}

	data, err := s.sessions.Get(ctx, sid)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeUnauthorized, err, "loading session")
	}

	lines := data.Cart
	found := false
	for i := range lines {
		if lines[i].ProductID == id.String() {
			lines[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		lines = append(lines, session.Line{ProductID: id.String(), Quantity: quantity})
	}

	if err := s.sessions.SaveCart(ctx, sid, lines); err != nil {
		return apperrors.Wrap(apperrors.CodeInternal, err, "saving cart")
	}

	return nil
}

// Fetch joins cart lines with current product rows. Lines whose product
// has since disappeared are skipped rather than failing the whole cart.
func (s *service) Fetch(ctx context.Context, sid string) (*Cart, error) {
	data, err := s.sessions.Get(ctx, sid)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUnauthorized, err, "loading session")
	}

	cart := &Cart{Lines: []Line{}, Total: decimal.Zero}
	for _, entry := range data.Cart {
		id, err := uuid.Parse(entry.ProductID)
		if err != nil {
			continue
		}

		product, err := s.products.FindProductByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, apperrors.Wrap(apperrors.CodeInternal, err, "loading cart product")
		}

		subtotal := product.Price.Mul(decimal.NewFromInt(int64(entry.Quantity)))
		cart.Lines = append(cart.Lines, Line{
			Product:  *product,
			Quantity: entry.Quantity,
			Subtotal: subtotal,
		})
		cart.Total = cart.Total.Add(subtotal)
	}

	return cart, nil
}

func (s *service) Lines(ctx context.Context, sid string) ([]session.Line, error) {
	data, err := s.sessions.Get(ctx, sid)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUnauthorized, err, "loading session")
	}
	return data.Cart, nil
}

func (s *service) Clear(ctx context.Context, sid string) error {
	if err := s.sessions.SaveCart(ctx, sid, []session.Line{}); err != nil {
		return apperrors.Wrap(apperrors.CodeInternal, err, "clearing cart")
	}
	return nil
}
