package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for cart persistence.
var (
	// ErrLineItemNotFound is returned when a line item is not found in any cart.
	ErrLineItemNotFound = errors.New("line item not found")
	// ErrLineItemConflict is returned when inserting a line that a concurrent
	// transaction created first for the same (cart, product) pair.
	ErrLineItemConflict = errors.New("line item already exists for this cart and product")
)

// CartRepository defines the interface for shopping cart database operations.
//
// The *ForUpdate variants take row-level locks and are only meaningful inside
// a TransactionManager.Execute scope; they serialize concurrent
// read-modify-write sequences on the same (cart, product) rows.
type CartRepository interface {
	// GetOrCreateCart resolves the user's cart, creating it on first use.
	// Safe against concurrent first adds for the same user.
	GetOrCreateCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// FindLineItemForUpdate retrieves the line item for (cart, product) with a
	// row lock, or ErrLineItemNotFound when the product is not in the cart yet.
	FindLineItemForUpdate(ctx context.Context, cartID, productID uint64) (*entity.LineItem, error)

	// FindLineItemByID retrieves a cart line item with its product and owning
	// cart loaded. Items already attached to an order are not visible here.
	FindLineItemByID(ctx context.Context, id uint64) (*entity.LineItem, error)

	// SaveLineItem inserts or updates a line item. An insert that collides
	// with a concurrently created line for the same (cart, product) fails
	// with ErrLineItemConflict.
	SaveLineItem(ctx context.Context, item *entity.LineItem) error

	// DeleteLineItem removes a line item from its cart.
	DeleteLineItem(ctx context.Context, id uint64) error

	// FindLineItemsByUser retrieves all line items of the user's cart with
	// products loaded, ordered by insertion.
	FindLineItemsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.LineItem, error)

	// FindLineItemsForCheckout retrieves all line items of the user's cart with
	// row locks held for the remainder of the transaction, so no concurrent
	// cart mutation can interleave with a running checkout.
	FindLineItemsForCheckout(ctx context.Context, userID uuid.UUID) ([]*entity.LineItem, error)

	// AttachLineItemsToOrder re-parents every line item of the user's cart to
	// the given order in a single statement: cart reference cleared, order
	// reference set.
	AttachLineItemsToOrder(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) error
}
