package entity

import (
	"time"

	"github.com/google/uuid"
)

// Cart is a user's shopping cart. Each user owns at most one cart (1:1),
// created lazily on the first add.
type Cart struct {
	ID        uint64    `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
