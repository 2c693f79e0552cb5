package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CheckoutResult is the outcome of a successful checkout: the created order
// and the lines that were moved into it, plus the pre-checkout cart total.
type CheckoutResult struct {
	OrderID    uuid.UUID       `json:"order_id"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Items      []LineItemView  `json:"items"`
}

// CheckoutUsecase converts a user's cart into an immutable order.
type CheckoutUsecase interface {
	// Checkout atomically re-parents every cart line into a new order. If any
	// line's quantity is below its product minimum, nothing happens and the
	// error names the offending product, its minimum and the requested
	// quantity.
	Checkout(ctx context.Context, userID uuid.UUID) (*CheckoutResult, error)
}
