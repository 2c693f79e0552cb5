package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order database operations.
// Orders are immutable once created; there are no update operations.
type OrderRepository interface {
	// CreateOrder persists a new order.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order with its line items and products loaded.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrdersByUser retrieves all orders of a user, newest first, with line
	// items and products loaded.
	FindOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
}
