package model

import (
	"time"

	"github.com/google/uuid"
)

// CartItemModel mirrors the 'cart_items' table. The composite unique index
// keeps one line per (visitor, product) pair.
type CartItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	VisitorID string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_cart_visitor_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_visitor_product"`
	Quantity  int       `gorm:"not null;check:quantity > 0"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
