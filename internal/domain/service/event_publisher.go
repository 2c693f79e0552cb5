package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OrderPlacedEvent is emitted after a checkout commits. Downstream consumers
// (fulfilment, notifications) subscribe to it; publishing is best-effort and
// never fails the checkout itself.
type OrderPlacedEvent struct {
	OrderID    uuid.UUID `json:"order_id"`
	UserID     uuid.UUID `json:"user_id"`
	TotalPrice string    `json:"total_price"` // Decimal string, exact.
	ItemCount  int       `json:"item_count"`
	PlacedAt   time.Time `json:"placed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderPlaced publishes an order-placed event for async processing
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
