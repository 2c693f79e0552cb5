package model

import (
	"github.com/google/uuid"
)

// LineItemModel is the GORM-specific struct for the 'line_items' table.
//
// Exactly one of CartID and OrderID is set at any time. The composite unique
// index on (cart_id, product_id) guarantees at most one line per product per
// cart; re-adds merge into the existing row instead of inserting a duplicate.
type LineItemModel struct {
	ID        uint64        `gorm:"primaryKey;autoIncrement"`
	CartID    *uint64       `gorm:"uniqueIndex:idx_line_items_cart_product"`
	ProductID uint64        `gorm:"not null;uniqueIndex:idx_line_items_cart_product"`
	OrderID   *uuid.UUID    `gorm:"type:uuid;index"`
	Quantity  uint64        `gorm:"not null"`
	Product   *ProductModel `gorm:"foreignKey:ProductID"`
	Cart      *CartModel    `gorm:"foreignKey:CartID"`
}

// TableName explicitly sets the table name for GORM.
func (LineItemModel) TableName() string {
	return "line_items"
}
