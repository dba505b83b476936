package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/techstore/storefront-backend/pkg/db/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file:catalogtest?mode=memory&cache=shared&_case_sensitive_like=true"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	for _, stmt := range []string{
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
	} {
		require.NoError(t, gdb.Exec(stmt).Error)
	}

	return gdb
}

func seedCategory(t *testing.T, gdb *gorm.DB, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	require.NoError(t, gdb.Create(category).Error)
	return category
}

func seedProduct(t *testing.T, gdb *gorm.DB, name string, categoryID uuid.UUID, featured bool) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:       name,
		Price:      decimal.NewFromFloat(999.99),
		Stock:      10,
		Featured:   featured,
		CategoryID: categoryID,
	}
	require.NoError(t, gdb.Create(product).Error)
	return product
}

func TestListProductsByCategory(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	phones := seedCategory(t, gdb, "Phones")
	laptops := seedCategory(t, gdb, "Laptops")
	seedProduct(t, gdb, "iPhone 15 Pro Max", phones.ID, true)
	seedProduct(t, gdb, "Galaxy S24", phones.ID, false)
	seedProduct(t, gdb, "ThinkPad X1", laptops.ID, false)

	all, err := repo.ListProducts(ctx, ProductFilters{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	filtered, err := repo.ListProducts(ctx, ProductFilters{CategoryID: &phones.ID})
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	for _, p := range filtered {
		require.Equal(t, phones.ID, p.CategoryID)
	}
}

func TestListProductsSearch(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	phones := seedCategory(t, gdb, "Phones")
	seedProduct(t, gdb, "iPhone 15 Pro Max", phones.ID, false)
	seedProduct(t, gdb, "Galaxy S24", phones.ID, false)

	matches, err := repo.ListProducts(ctx, ProductFilters{Search: "Pro"})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, "iPhone 15 Pro Max", matches[0].Name)

	none, err := repo.ListProducts(ctx, ProductFilters{Search: "Pixel"})
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestListProductsSearchCaseSensitive(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	phones := seedCategory(t, gdb, "Phones")
	seedProduct(t, gdb, "iPhone 15 Pro Max", phones.ID, false)

	matches, err := repo.ListProducts(ctx, ProductFilters{Search: "pro"})
	require.NoError(t, err)
	require.Empty(t, matches)

	matches, err = repo.SearchProducts(ctx, "pro")
	require.NoError(t, err)
	require.Empty(t, matches)

	matches, err = repo.SearchProducts(ctx, "Pro")
	require.NoError(t, err)
	require.Len(t, matches, 1)
}

func TestFindProductByID(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	phones := seedCategory(t, gdb, "Phones")
	created := seedProduct(t, gdb, "Galaxy S24", phones.ID, false)

	found, err := repo.FindProductByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, found.ID)
	require.NotNil(t, found.Category)
	require.Equal(t, "Phones", found.Category.Name)

	_, err = repo.FindProductByID(ctx, uuid.New())
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFeaturedProductsFirstN(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	phones := seedCategory(t, gdb, "Phones")
	seedProduct(t, gdb, "First", phones.ID, false)
	seedProduct(t, gdb, "Second", phones.ID, true)
	seedProduct(t, gdb, "Third", phones.ID, false)

	// The flag does not gate the strip: the first N products show
	// regardless of how they are badged.
	featured, err := repo.FeaturedProducts(ctx, 2)
	require.NoError(t, err)
	require.Len(t, featured, 2)
	require.Equal(t, "First", featured[0].Name)
	require.Equal(t, "Second", featured[1].Name)
}

func TestCountProducts(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	count, err := repo.CountProducts(ctx)
	require.NoError(t, err)
	require.Zero(t, count)

	phones := seedCategory(t, gdb, "Phones")
	seedProduct(t, gdb, "Galaxy S24", phones.ID, false)

	count, err = repo.CountProducts(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestListCategoriesOrdered(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewRepository(gdb)
	ctx := context.Background()

	seedCategory(t, gdb, "Phones")
	seedCategory(t, gdb, "Accessories")
	seedCategory(t, gdb, "Laptops")

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	require.Equal(t, "Accessories", categories[0].Name)
	require.Equal(t, "Laptops", categories[1].Name)
	require.Equal(t, "Phones", categories[2].Name)
}
