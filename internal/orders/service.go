package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/techstore/storefront-backend/pkg/db/models"
	"github.com/techstore/storefront-backend/pkg/enums"
	apperrors "github.com/techstore/storefront-backend/pkg/errors"
	"github.com/techstore/storefront-backend/pkg/logger"
)

type Service interface {
	GetForUser(ctx context.Context, userID, orderID string, isAdmin bool) (*models.Order, error)
	ListForUser(ctx context.Context, userID string) ([]models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	Recent(ctx context.Context, limit int) ([]models.Order, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, orderID string, input UpdateStatusInput) (*models.Order, error)
}

type service struct {
	repo Repository
	log  *logger.Logger
}

func NewService(repo Repository, log *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &service{repo: repo, log: log}, nil
}

func (s *service) GetForUser(ctx context.Context, userID, orderID string, isAdmin bool) (*models.Order, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeValidation, "invalid order id")
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "order not found")
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "loading order")
	}

	// Another user's order looks identical to a missing one.
	if !isAdmin && order.UserID.String() != userID {
		return nil, apperrors.New(apperrors.CodeNotFound, "order not found")
	}

	return order, nil
}

func (s *service) ListForUser(ctx context.Context, userID string) ([]models.Order, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeValidation, "invalid user id")
	}

	orders, err := s.repo.ListByUser(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "listing orders")
	}
	return orders, nil
}

func (s *service) List(ctx context.Context) ([]models.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "listing orders")
	}
	return orders, nil
}

func (s *service) Recent(ctx context.Context, limit int) ([]models.Order, error) {
	if limit <= 0 {
		limit = 5
	}
	orders, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "listing recent orders")
	}
	return orders, nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.CodeInternal, err, "counting orders")
	}
	return count, nil
}

func (s *service) UpdateStatus(ctx context.Context, orderID string, input UpdateStatusInput) (*models.Order, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeValidation, "invalid order id")
	}

	status, err := enums.ParseOrderStatus(input.Status)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeValidation, "invalid order status")
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "order not found")
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "loading order")
	}

	order.Status = status
	// Empty admin notes leave the existing notes in place.
	if input.AdminNotes != "" {
		order.Notes = input.AdminNotes
	}

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "updating order")
	}

	s.log.Info(
		s.log.WithFields(ctx, map[string]any{
			"order_id": order.ID.String(),
			"status":   status.String(),
		}),
		"order status updated",
	)

	return order, nil
}
