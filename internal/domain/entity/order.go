package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus enumerates the lifecycle states of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusFailed    OrderStatus = "FAILED"
)

// IsValid reports whether s is one of the known order statuses.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusPaid, OrderStatusFailed:
		return true
	}

	return false
}

// Coerce returns s when it is a known status and PENDING otherwise. Caller
// supplied statuses are never rejected, only coerced to the safe default.
func (s OrderStatus) Coerce() OrderStatus {
	if s.IsValid() {
		return s
	}

	return OrderStatusPending
}

// strictTransitions is the enforced transition table used when strict mode is
// enabled. DELIVERED, CANCELLED and FAILED are terminal.
var strictTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusPaid, OrderStatusFailed, OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusPaid:      {OrderStatusConfirmed, OrderStatusShipped, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered},
}

// CanTransition reports whether an order may move from one status to another
// under the strict transition table. Permissive mode bypasses this check
// entirely, which matches the historical behavior of the store.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range strictTransitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// LensInfo carries optional prescription details attached to an order when
// the customer buys prescription eyewear.
type LensInfo struct {
	PupillaryDistance float64 `json:"pupillary_distance,omitempty"`
	LeftEye           string  `json:"left_eye,omitempty"`
	RightEye          string  `json:"right_eye,omitempty"`
	Notes             string  `json:"notes,omitempty"`
}

// Order is a completed checkout. Total and the item unit prices are snapshots
// taken at creation time and are never recomputed from live product prices.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	User            *User           `json:"user,omitempty"`
	Total           decimal.Decimal `json:"total"`
	Status          OrderStatus     `json:"status"`
	Paid            bool            `json:"paid"`
	ShippingAddress string          `json:"shipping_address"`
	Phone           string          `json:"phone"`
	Email           string          `json:"email"`
	Latitude        *float64        `json:"latitude,omitempty"`
	Longitude       *float64        `json:"longitude,omitempty"`
	Lens            *LensInfo       `json:"lens,omitempty"`
	QPayInvoiceID   *string         `json:"qpay_invoice_id,omitempty"` // External invoice identifier; unique, guards duplicate materialization.
	Items           []*OrderItem    `json:"items,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderItem is one line of an order. UnitPrice is captured at order time and
// the row is immutable after creation.
type OrderItem struct {
	ID        uuid.UUID       `json:"id"`
	OrderID   uuid.UUID       `json:"order_id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Product   *Product        `json:"product,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
