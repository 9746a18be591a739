package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a customer record keyed by email. Customers never authenticate;
// the record is upserted whenever an order or cart touches a previously
// unseen email address.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
