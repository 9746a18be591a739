// Package usecase defines the application's inbound ports and their
// input/output types.
package usecase

import (
	"context"

	"optika/internal/domain/entity"
	"optika/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductInput carries the writable fields of a product.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	ImageURL    string
	FaceShape   *string
	CategoryID  uuid.UUID
}

// CategoryInput carries the writable fields of a category.
type CategoryInput struct {
	Name        string
	Description string
}

// CatalogUsecase defines the interface for catalog management use cases
type CatalogUsecase interface {
	// ListProducts retrieves products matching the filter, newest first.
	ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error)

	// GetProduct retrieves a single product with its category.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// CreateProduct adds a product to the catalog.
	CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error)

	// UpdateProduct replaces the writable fields of a product.
	UpdateProduct(ctx context.Context, id uuid.UUID, input ProductInput) (*entity.Product, error)

	// DeleteProduct removes a product from the catalog.
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// UploadProductImage stores an image for the product and updates its URL.
	UploadProductImage(ctx context.Context, id uuid.UUID, contentType string, data []byte) (string, error)

	// ListCategories retrieves all categories ordered by name.
	ListCategories(ctx context.Context) ([]*entity.Category, error)

	// CreateCategory adds a category. Duplicate names are rejected.
	CreateCategory(ctx context.Context, input CategoryInput) (*entity.Category, error)

	// UpdateCategory replaces the writable fields of a category.
	UpdateCategory(ctx context.Context, id uuid.UUID, input CategoryInput) (*entity.Category, error)

	// DeleteCategory removes a category unless products still reference it.
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}
