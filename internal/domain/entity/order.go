package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order is the immutable result of a checkout. It owns the line items that
// were detached from the user's cart when it was placed.
type Order struct {
	ID        uuid.UUID   `json:"id"` // Globally unique, assigned at creation.
	UserID    uuid.UUID   `json:"user_id"`
	CreatedAt time.Time   `json:"created_at"`
	Items     []*LineItem `json:"items,omitempty"`
}
