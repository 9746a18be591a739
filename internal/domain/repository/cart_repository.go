package repository

import (
	"context"
	"errors"

	"optika/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartItemNotFound is returned when a visitor has no line for a product.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines per-visitor cart line persistence. Lines are keyed
// by the unique (visitor, product) pair; concurrent writes to the same line
// resolve last-write-wins at the storage layer.
type CartRepository interface {
	// FindLine retrieves the visitor's line for a product.
	FindLine(ctx context.Context, visitorID string, productID uuid.UUID) (*entity.CartItem, error)

	// ListByVisitor retrieves all lines for a visitor with products and
	// categories preloaded.
	ListByVisitor(ctx context.Context, visitorID string) ([]*entity.CartItem, error)

	// Save creates the line or updates its quantity when the (visitor,
	// product) pair already exists.
	Save(ctx context.Context, item *entity.CartItem) error

	// DeleteLine removes the visitor's line for a product.
	DeleteLine(ctx context.Context, visitorID string, productID uuid.UUID) error

	// ClearVisitor removes every line belonging to a visitor.
	ClearVisitor(ctx context.Context, visitorID string) error
}
