package admin

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"

	"github.com/techstore/storefront-backend/pkg/db/models"
	"github.com/techstore/storefront-backend/pkg/logger"
)

type stubUsers struct{ count int64 }

func (s stubUsers) Count(ctx context.Context) (int64, error) { return s.count, nil }

type stubProducts struct{ count int64 }

func (s stubProducts) CountProducts(ctx context.Context) (int64, error) { return s.count, nil }

type stubReviews struct{ count int64 }

func (s stubReviews) Count(ctx context.Context) (int64, error) { return s.count, nil }

type stubOrders struct {
	orders []models.Order
}

func (s stubOrders) Count(ctx context.Context) (int64, error) {
	return int64(len(s.orders)), nil
}

func (s stubOrders) Recent(ctx context.Context, limit int) ([]models.Order, error) {
	if len(s.orders) > limit {
		return s.orders[:limit], nil
	}
	return s.orders, nil
}

func TestDashboard(t *testing.T) {
	orders := make([]models.Order, 7)
	for i := range orders {
		orders[i] = models.Order{ID: uuid.New()}
	}

	log := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	svc, err := NewService(stubUsers{count: 12}, stubProducts{count: 34}, stubOrders{orders: orders}, stubReviews{count: 9}, log)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	dashboard, err := svc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if dashboard.UserCount != 12 {
		t.Fatalf("user count = %d", dashboard.UserCount)
	}
	if dashboard.ProductCount != 34 {
		t.Fatalf("product count = %d", dashboard.ProductCount)
	}
	if dashboard.OrderCount != 7 {
		t.Fatalf("order count = %d", dashboard.OrderCount)
	}
	if dashboard.ReviewCount != 9 {
		t.Fatalf("review count = %d", dashboard.ReviewCount)
	}
	if len(dashboard.RecentOrders) != 5 {
		t.Fatalf("recent orders = %d", len(dashboard.RecentOrders))
	}
}
