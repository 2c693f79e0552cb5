// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/shopspring/decimal"
)

// Product represents a catalog product with its pricing and packaging constraints.
// Products are read-only for the cart and checkout flows; nothing in the core
// mutates a product after it has been created.
type Product struct {
	ID               uint64          `json:"id"`                 // Catalog identifier.
	Name             string          `json:"name"`               // Display name.
	Price            decimal.Decimal `json:"price"`              // Unit price, fixed-point decimal.
	Minimum          uint64          `json:"minimum"`            // Smallest orderable quantity, enforced at checkout only. Always > 0.
	AmountPerPackage uint64          `json:"amount_per_package"` // Package size; quantities must be exact multiples. Always > 0.
	MaxAvailability  uint64          `json:"max_availability"`   // Availability ceiling for a single cart line.
}
