package catalog

import (
	"github.com/google/uuid"

	"github.com/techstore/storefront-backend/pkg/db/models"
)

// ProductFilters narrows the product listing. Zero values mean "all".
type ProductFilters struct {
	CategoryID *uuid.UUID
	Search     string
}

type CreateProductInput struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=5000"`
	Price       string `json:"price" validate:"required"`
	Stock       int    `json:"stock" validate:"gte=0"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	Featured    bool   `json:"featured"`
	CategoryID  string `json:"category_id" validate:"required"`
}

type CreateCategoryInput struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description" validate:"max=2000"`
}

// ProductDetail is a product page payload: the product plus its reviews.
type ProductDetail struct {
	Product models.Product  `json:"product"`
	Reviews []models.Review `json:"reviews"`
}

// SearchResults spans products and blog posts for the site-wide search.
type SearchResults struct {
	Query    string            `json:"query"`
	Products []models.Product  `json:"products"`
	Posts    []models.BlogPost `json:"posts"`
}
