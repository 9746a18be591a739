package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Email is the identity key for the
// upsert performed at checkout.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Name      string    `gorm:"type:varchar(100)"`
	Phone     string    `gorm:"type:varchar(32)"`
	Address   string    `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Orders []*OrderModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
