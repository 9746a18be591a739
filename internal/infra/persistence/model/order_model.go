package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. QPayInvoiceID carries a unique
// index: it is the idempotency key guarding the webhook/poller race, so at
// most one order can ever be materialized per external invoice.
type OrderModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Total           decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status          string          `gorm:"type:varchar(16);not null;default:'PENDING'"`
	Paid            bool            `gorm:"not null;default:false"`
	ShippingAddress string          `gorm:"type:text"`
	Phone           string          `gorm:"type:varchar(32)"`
	Email           string          `gorm:"type:varchar(255);not null"`
	Latitude        *float64
	Longitude       *float64

	// Lens-fitting metadata, present only for prescription orders.
	PupillaryDistance *float64
	LeftEye           string `gorm:"type:varchar(64)"`
	RightEye          string `gorm:"type:varchar(64)"`
	LensNotes         string `gorm:"type:text"`

	QPayInvoiceID *string `gorm:"type:varchar(128);uniqueIndex"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	User  *UserModel        `gorm:"foreignKey:UserID"`
	Items []*OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. UnitPrice is the price
// snapshot taken at order time; rows are immutable after creation.
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
