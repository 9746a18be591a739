// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"optika/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ErrInsufficientStock is returned when a guarded stock decrement would push
// stock below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

// ProductFilter narrows product listings.
type ProductFilter struct {
	CategoryID *uuid.UUID
	FaceShape  *string
}

// ProductRepository defines the standard operations for product persistence.
// The application layer depends on this interface, not the concrete implementation.
type ProductRepository interface {
	// FindByID retrieves a single product with its category preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List retrieves products matching the filter, newest first.
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product.
	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementStock atomically subtracts qty from the product's stock,
	// failing with ErrInsufficientStock when the remaining stock does not
	// cover qty. The guard runs inside the storage layer so concurrent
	// checkouts racing on the last unit are serialized there.
	DecrementStock(ctx context.Context, id uuid.UUID, qty int) error

	// CountByCategory returns how many products reference a category.
	CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error)
}
