package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem is a single line in a visitor's cart. A visitor is identified by
// an opaque long-lived cookie token, not by an authenticated account, and
// holds at most one line per product.
type CartItem struct {
	ID        uuid.UUID `json:"id"`
	VisitorID string    `json:"visitor_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Product   *Product  `json:"product,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LineTotal returns the current price of the line. Cart totals are always
// computed from live product prices; the snapshot happens at order time.
func (c *CartItem) LineTotal() decimal.Decimal {
	if c.Product == nil {
		return decimal.Zero
	}

	return c.Product.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
}
