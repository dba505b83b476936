package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/techstore/storefront-backend/pkg/db/models"
	apperrors "github.com/techstore/storefront-backend/pkg/errors"
	"github.com/techstore/storefront-backend/pkg/logger"
)

type reviewLister interface {
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]models.Review, error)
}

type blogSearcher interface {
	SearchByTitle(ctx context.Context, query string) ([]models.BlogPost, error)
}

type Service interface {
	ListProducts(ctx context.Context, filters ProductFilters) ([]models.Product, error)
	GetProduct(ctx context.Context, productID string) (*ProductDetail, error)
	Featured(ctx context.Context) ([]models.Product, error)
	SearchAll(ctx context.Context, query string) (*SearchResults, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*models.Product, error)
	CreateCategory(ctx context.Context, input CreateCategoryInput) (*models.Category, error)
}

type service struct {
	repo          Repository
	reviews       reviewLister
	blog          blogSearcher
	log           *logger.Logger
	featuredLimit int
}

func NewService(
	repo Repository,
	reviews reviewLister,
	blog blogSearcher,
	log *logger.Logger,
	featuredLimit int,
) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository is required")
	}
	if reviews == nil {
		return nil, fmt.Errorf("review lister is required")
	}
	if blog == nil {
		return nil, fmt.Errorf("blog searcher is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if featuredLimit <= 0 {
		featuredLimit = 8
	}

	return &service{
		repo:          repo,
		reviews:       reviews,
		blog:          blog,
		log:           log,
		featuredLimit: featuredLimit,
	}, nil
}

func (s *service) ListProducts(ctx context.Context, filters ProductFilters) ([]models.Product, error) {
	products, err := s.repo.ListProducts(ctx, filters)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "listing products")
	}
	return products, nil
}

func (s *service) GetProduct(ctx context.Context, productID string) (*ProductDetail, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeValidation, "invalid product id")
	}

	product, err := s.repo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "product not found")
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "loading product")
	}

	reviews, err := s.reviews.ListByProduct(ctx, id)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "loading product reviews")
	}

	return &ProductDetail{Product: *product, Reviews: reviews}, nil
}

func (s *service) Featured(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.FeaturedProducts(ctx, s.featuredLimit)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "listing featured products")
	}
	return products, nil
}

func (s *service) SearchAll(ctx context.Context, query string) (*SearchResults, error) {
	results := &SearchResults{
		Query:    query,
		Products: []models.Product{},
		Posts:    []models.BlogPost{},
	}
	if query == "" {
		return results, nil
	}

	products, err := s.repo.SearchProducts(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "searching products")
	}
	results.Products = products

	posts, err := s.blog.SearchByTitle(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "searching blog posts")
	}
	results.Posts = posts

	return results, nil
}

func (s *service) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "listing categories")
	}
	return categories, nil
}

func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*models.Product, error) {
	categoryID, err := uuid.Parse(input.CategoryID)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeValidation, "invalid category id")
	}

	price, err := decimal.NewFromString(input.Price)
	if err != nil || price.IsNegative() {
		return nil, apperrors.New(apperrors.CodeValidation, "invalid price")
	}

	if _, err := s.repo.FindCategoryByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeValidation, "category not found")
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "loading category")
	}

	product := &models.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       price,
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
		Featured:    input.Featured,
		CategoryID:  categoryID,
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "creating product")
	}

	s.log.Info(s.log.WithField(ctx, "product_id", product.ID.String()), "product created")
	return product, nil
}

func (s *service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*models.Category, error) {
	category := &models.Category{
		Name:        input.Name,
		Description: input.Description,
	}

	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "creating category")
	}

	s.log.Info(s.log.WithField(ctx, "category_id", category.ID.String()), "category created")
	return category, nil
}
