package usecase

import (
	"context"

	"optika/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutItem is one requested order line.
type CheckoutItem struct {
	ProductID uuid.UUID
	Quantity  int
}

// CheckoutInput carries everything needed to materialize an order. Status is
// optional; unknown values are coerced to PENDING rather than rejected.
type CheckoutInput struct {
	VisitorID string
	Email     string
	Name      string
	Phone     string
	Address   string
	Latitude  *float64
	Longitude *float64
	Lens      *entity.LensInfo
	Status    entity.OrderStatus
	Paid      bool
	Items     []CheckoutItem
}

// OrderUsecase defines the interface for order management use cases
type OrderUsecase interface {
	// Checkout materializes an order from the input: the customer record is
	// upserted by email, then order, items, guarded stock decrements and the
	// visitor cart clear run in one transaction. Prices are snapshotted at
	// read time.
	Checkout(ctx context.Context, input CheckoutInput) (*entity.Order, error)

	// CreateOrderForInvoice materializes at most one order per external
	// invoice. When an order already exists for the invoice the existing
	// order is returned unchanged.
	CreateOrderForInvoice(ctx context.Context, invoiceID string, input CheckoutInput) (*entity.Order, error)

	// GetOrder retrieves an order with its full item graph.
	GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListOrders retrieves all orders, newest first.
	ListOrders(ctx context.Context) ([]*entity.Order, error)

	// UpdateOrderStatus moves an order to a new status. The strict transition
	// table is enforced only when configured; the default accepts any move.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error)

	// DeleteOrder removes an order; its items cascade.
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}
