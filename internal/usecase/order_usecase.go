package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderView is the serialized shape of a placed order.
type OrderView struct {
	ID         uuid.UUID       `json:"id"`
	CreatedAt  time.Time       `json:"created_at"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Items      []LineItemView  `json:"items"`
}

// OrderUsecase exposes read access to a user's placed orders.
type OrderUsecase interface {
	// GetOrder retrieves one of the user's orders by id.
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*OrderView, error)

	// ListOrders retrieves all orders of the user, newest first.
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*OrderView, error)
}
