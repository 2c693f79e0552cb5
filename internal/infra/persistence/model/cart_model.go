package model

import (
	"time"

	"github.com/google/uuid"
)

// CartModel is the GORM-specific struct for the 'shopping_carts' table.
// The unique index on user_id enforces the 1:1 user-cart relationship at the
// database level; concurrent first adds race on it and one of them re-reads.
type CartModel struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "shopping_carts"
}
