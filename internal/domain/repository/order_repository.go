package repository

import (
	"context"
	"errors"

	"optika/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// ErrDuplicateInvoice is returned when an order already exists for the
// external invoice identifier. The invoice column carries a unique
// constraint, so the second writer in the webhook/poller race loses here
// and must fall back to the existing order.
var ErrDuplicateInvoice = errors.New("order already exists for invoice")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// Create persists an order together with its items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with items, products, categories and the
	// owning user preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByInvoiceID retrieves the order materialized for an external
	// invoice, if any.
	FindByInvoiceID(ctx context.Context, invoiceID string) (*entity.Order, error)

	// List retrieves all orders, newest first.
	List(ctx context.Context) ([]*entity.Order, error)

	// UpdateStatus sets the order status and paid flag.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, paid bool) error

	// Delete removes an order; items cascade.
	Delete(ctx context.Context, id uuid.UUID) error
}
