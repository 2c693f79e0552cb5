package entity

import (
	domainerrors "storefront/internal/domain/errors"
)

// ValidateQuantity checks a candidate line quantity against the product's
// packaging constraints. The availability ceiling is checked before package
// integrity, so when both are violated the quantity-exceeded error wins.
// The minimum orderable quantity is deliberately NOT checked here; it is
// enforced at checkout only, so a cart may accumulate below-minimum lines
// while the user is still shopping.
func ValidateQuantity(product *Product, quantity uint64) error {
	if quantity > product.MaxAvailability {
		return domainerrors.ErrProductQuantityExceeded
	}
	if quantity%product.AmountPerPackage != 0 {
		return domainerrors.ErrProductPackageSplit
	}

	return nil
}
