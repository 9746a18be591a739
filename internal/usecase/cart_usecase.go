package usecase

import (
	"context"

	"optika/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartView is a visitor's cart with line items and the running total computed
// from live product prices.
type CartView struct {
	Items []*entity.CartItem `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

// CartUsecase defines the interface for visitor cart use cases. Visitors are
// identified by the opaque cookie token set by the HTTP layer.
type CartUsecase interface {
	// AddItem adds qty units of a product, incrementing an existing line. The
	// combined quantity is checked against available stock.
	AddItem(ctx context.Context, visitorID string, productID uuid.UUID, qty int) (*entity.CartItem, error)

	// UpdateQuantity sets a line's quantity. Zero or negative removes the
	// line; the returned item is nil in that case.
	UpdateQuantity(ctx context.Context, visitorID string, productID uuid.UUID, qty int) (*entity.CartItem, error)

	// RemoveItem deletes the visitor's line for a product.
	RemoveItem(ctx context.Context, visitorID string, productID uuid.UUID) error

	// ListItems retrieves the visitor's cart with products and line totals.
	ListItems(ctx context.Context, visitorID string) (*CartView, error)

	// Clear removes every line in the visitor's cart.
	Clear(ctx context.Context, visitorID string) error
}
