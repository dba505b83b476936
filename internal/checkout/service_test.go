package checkout

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/techstore/storefront-backend/internal/catalog"
	"github.com/techstore/storefront-backend/internal/orders"
	"github.com/techstore/storefront-backend/pkg/auth/session"
	"github.com/techstore/storefront-backend/pkg/db"
	"github.com/techstore/storefront-backend/pkg/db/models"
	apperrors "github.com/techstore/storefront-backend/pkg/errors"
	"github.com/techstore/storefront-backend/pkg/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file:checkouttest?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	for _, stmt := range []string{
		`DROP TABLE IF EXISTS order_items`,
		`DROP TABLE IF EXISTS orders`,
		`DROP TABLE IF EXISTS products`,
		`DROP TABLE IF EXISTS categories`,
		`CREATE TABLE categories (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			created_at DATETIME
		)`,
		`CREATE TABLE products (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC NOT NULL,
			stock INTEGER NOT NULL DEFAULT 0,
			image_url TEXT NOT NULL DEFAULT '',
			featured BOOLEAN NOT NULL DEFAULT 0,
			category_id TEXT NOT NULL,
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE orders (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			total NUMERIC NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			shipping_address TEXT NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			created_at DATETIME,
			updated_at DATETIME
		)`,
		`CREATE TABLE order_items (
			id TEXT PRIMARY KEY,
			order_id TEXT NOT NULL,
			product_id TEXT NOT NULL,
			quantity INTEGER NOT NULL,
			price NUMERIC NOT NULL
		)`,
	} {
		require.NoError(t, gdb.Exec(stmt).Error)
	}

	return gdb
}

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()

	gdb := setupTestDB(t)
	log := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})

	svc, err := NewService(
		db.NewWithGorm(gdb),
		orders.NewRepository(gdb),
		catalog.NewRepository(gdb),
		log,
	)
	require.NoError(t, err)

	return svc, gdb
}

func seedProduct(t *testing.T, gdb *gorm.DB, price float64) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:       "product",
		Price:      decimal.NewFromFloat(price),
		CategoryID: uuid.New(),
	}
	require.NoError(t, gdb.Create(product).Error)
	return product
}

func requireCode(t *testing.T, err error, code apperrors.Code) {
	t.Helper()
	typed := apperrors.As(err)
	require.NotNil(t, typed, "expected typed error, got %v", err)
	require.Equal(t, code, typed.Code())
}

func TestExecute(t *testing.T) {
	svc, gdb := newTestService(t)
	ctx := context.Background()

	first := seedProduct(t, gdb, 99.99)
	second := seedProduct(t, gdb, 10.01)
	userID := uuid.NewString()

	order, err := svc.Execute(ctx, userID, []session.Line{
		{ProductID: first.ID.String(), Quantity: 2},
		{ProductID: second.ID.String(), Quantity: 1},
	}, Input{ShippingAddress: "1 Main St", Notes: "ring twice"})
	require.NoError(t, err)

	require.Equal(t, userID, order.UserID.String())
	require.True(t, order.Total.Equal(decimal.NewFromFloat(209.99)), "total = %s", order.Total)
	require.Equal(t, "1 Main St", order.ShippingAddress)
	require.Equal(t, "ring twice", order.Notes)
	require.Len(t, order.Items, 2)

	// Stored total always equals the sum of the item snapshots.
	sum := decimal.Zero
	for _, item := range order.Items {
		sum = sum.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	require.True(t, order.Total.Equal(sum))
}

func TestExecuteEmptyCart(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Execute(context.Background(), uuid.NewString(), nil, Input{ShippingAddress: "1 Main St"})
	requireCode(t, err, apperrors.CodeValidation)
	require.Equal(t, "cart is empty", apperrors.As(err).Message())
}

func TestExecuteMissingProductAbortsOrder(t *testing.T) {
	svc, gdb := newTestService(t)
	ctx := context.Background()

	kept := seedProduct(t, gdb, 50.00)

	_, err := svc.Execute(ctx, uuid.NewString(), []session.Line{
		{ProductID: kept.ID.String(), Quantity: 1},
		{ProductID: uuid.NewString(), Quantity: 1},
	}, Input{ShippingAddress: "1 Main St"})
	requireCode(t, err, apperrors.CodeNotFound)

	// The whole transaction rolled back.
	var orderCount, itemCount int64
	require.NoError(t, gdb.Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, gdb.Model(&models.OrderItem{}).Count(&itemCount).Error)
	require.Zero(t, orderCount)
	require.Zero(t, itemCount)
}

func TestExecuteRejectsBadLines(t *testing.T) {
	svc, gdb := newTestService(t)
	ctx := context.Background()

	product := seedProduct(t, gdb, 50.00)

	_, err := svc.Execute(ctx, uuid.NewString(), []session.Line{
		{ProductID: "not-a-uuid", Quantity: 1},
	}, Input{ShippingAddress: "1 Main St"})
	requireCode(t, err, apperrors.CodeValidation)

	_, err = svc.Execute(ctx, uuid.NewString(), []session.Line{
		{ProductID: product.ID.String(), Quantity: 0},
	}, Input{ShippingAddress: "1 Main St"})
	requireCode(t, err, apperrors.CodeValidation)
}
