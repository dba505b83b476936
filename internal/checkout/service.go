package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/techstore/storefront-backend/internal/catalog"
	"github.com/techstore/storefront-backend/internal/orders"
	"github.com/techstore/storefront-backend/pkg/auth/session"
	"github.com/techstore/storefront-backend/pkg/db/models"
	apperrors "github.com/techstore/storefront-backend/pkg/errors"
	"github.com/techstore/storefront-backend/pkg/logger"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type Input struct {
	ShippingAddress string `json:"shipping_address" validate:"required,max=500"`
	Notes           string `json:"notes" validate:"max=2000"`
}

type Service interface {
	Execute(ctx context.Context, userID string, lines []session.Line, input Input) (*models.Order, error)
}

type service struct {
	tx       txRunner
	orders   orders.Repository
	products catalog.Repository
	log      *logger.Logger
}

func NewService(tx txRunner, ordersRepo orders.Repository, products catalog.Repository, log *logger.Logger) (Service, error) {
	if tx == nil {
		return nil, fmt.Errorf("transaction runner is required")
	}
	if ordersRepo == nil {
		return nil, fmt.Errorf("orders repository is required")
	}
	if products == nil {
		return nil, fmt.Errorf("catalog repository is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return &service{tx: tx, orders: ordersRepo, products: products, log: log}, nil
}

// Execute turns the session cart into an order. Product prices are read
// once inside the transaction, so the stored total always equals the sum
// of the item snapshots.
func (s *service) Execute(ctx context.Context, userID string, lines []session.Line, input Input) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, apperrors.New(apperrors.CodeValidation, "cart is empty")
	}

	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeValidation, "invalid user id")
	}

	var orderID uuid.UUID
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		ordersRepo := s.orders.WithTx(tx)
		productsRepo := s.products.WithTx(tx)

		cache := map[uuid.UUID]*models.Product{}
		total := decimal.Zero

		items := make([]models.OrderItem, 0, len(lines))
		for _, line := range lines {
			productID, err := uuid.Parse(line.ProductID)
			if err != nil {
				return apperrors.New(apperrors.CodeValidation, "invalid product id")
			}
			if line.Quantity <= 0 {
				return apperrors.New(apperrors.CodeValidation, "quantity must be positive")
			}

			product, ok := cache[productID]
			if !ok {
				product, err = productsRepo.FindProductByID(ctx, productID)
				if err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return apperrors.New(apperrors.CodeNotFound, "product not found")
					}
					return apperrors.Wrap(apperrors.CodeInternal, err, "loading product")
				}
				cache[productID] = product
			}

			subtotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
			total = total.Add(subtotal)

			items = append(items, models.OrderItem{
				ProductID: productID,
				Quantity:  line.Quantity,
				Price:     product.Price,
			})
		}

		order := &models.Order{
			UserID:          uid,
			Total:           total,
			ShippingAddress: input.ShippingAddress,
			Notes:           input.Notes,
		}
		if err := ordersRepo.Create(ctx, order); err != nil {
			return apperrors.Wrap(apperrors.CodeInternal, err, "creating order")
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := ordersRepo.CreateItems(ctx, items); err != nil {
			return apperrors.Wrap(apperrors.CodeInternal, err, "creating order items")
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		if typed := apperrors.As(err); typed != nil {
			return nil, typed
		}
		s.log.Error(s.log.WithField(ctx, "error_dump", apperrors.Dump(err)), "checkout transaction failed", err)
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "placing order")
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "loading placed order")
	}

	s.log.Info(
		s.log.WithFields(ctx, map[string]any{
			"order_id": order.ID.String(),
			"total":    order.Total.String(),
		}),
		"order placed",
	)

	return order, nil
}
