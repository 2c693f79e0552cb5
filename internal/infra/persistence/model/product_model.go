// Package model holds the GORM-specific structs of the persistence layer.
package model

import (
	"github.com/shopspring/decimal"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID               uint64          `gorm:"primaryKey;autoIncrement"`
	Name             string          `gorm:"size:512;not null"`
	Price            decimal.Decimal `gorm:"type:numeric(1000,2);not null"`
	Minimum          uint64          `gorm:"not null"`
	AmountPerPackage uint64          `gorm:"column:amount_per_package;not null"`
	MaxAvailability  uint64          `gorm:"column:max_availability;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
