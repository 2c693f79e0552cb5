// Package usecase defines the application-facing interfaces of the core
// engines together with their view types.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CreateProductInput carries the fields of a new catalog product.
type CreateProductInput struct {
	Name             string
	Price            decimal.Decimal
	Minimum          uint64
	AmountPerPackage uint64
	MaxAvailability  uint64
}

// CatalogUsecase exposes the read-mostly product catalog.
type CatalogUsecase interface {
	// CreateProduct adds a product to the catalog. Products are immutable
	// afterwards in the normal flow.
	CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error)

	// GetProduct retrieves a single product by id.
	GetProduct(ctx context.Context, id uint64) (*entity.Product, error)

	// ListProducts retrieves products whose name contains the filter
	// (case-insensitive); an empty filter returns everything.
	ListProducts(ctx context.Context, nameFilter string) ([]*entity.Product, error)
}
