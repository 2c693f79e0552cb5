// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrProductNotFound is returned when a product is not in the catalog.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for catalog database operations.
// The cart and checkout engines only ever read from it.
type ProductRepository interface {
	// CreateProduct persists a new catalog product.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product by its identifier.
	FindProductByID(ctx context.Context, id uint64) (*entity.Product, error)

	// ListProducts retrieves products, optionally filtered by a
	// case-insensitive name-contains match.
	ListProducts(ctx context.Context, nameFilter string) ([]*entity.Product, error)
}
