package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is a (product, quantity) pair attached to exactly one of a cart or
// an order at any time. Checkout re-parents the item from the cart to the
// order; it is never copied.
type LineItem struct {
	ID        uint64     `json:"id"`
	CartID    *uint64    `json:"cart_id,omitempty"`  // Set while the item sits in a cart.
	OrderID   *uuid.UUID `json:"order_id,omitempty"` // Set once the item belongs to an order.
	ProductID uint64     `json:"product_id"`
	Quantity  uint64     `json:"quantity"`
	Product   *Product   `json:"product,omitempty"`
	Cart      *Cart      `json:"-"`
}

// PartialPrice returns price x quantity with exact decimal arithmetic.
func (li *LineItem) PartialPrice() decimal.Decimal {
	return li.Product.Price.Mul(decimal.NewFromUint64(li.Quantity))
}

// PackageIntegrity reports whether the quantity is an exact multiple of the
// product's package size.
func (li *LineItem) PackageIntegrity() bool {
	return li.Quantity%li.Product.AmountPerPackage == 0
}
