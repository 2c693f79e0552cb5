package impl

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// ErrInvalidPackaging is returned when a new product carries a zero minimum
// or package size.
var ErrInvalidPackaging = errors.New("minimum and amount per package must be positive")

type catalogService struct {
	productRepo repository.ProductRepository
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
	}
}

// CreateProduct adds a product to the catalog.
func (s *catalogService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	// Zero values would break the validator's modulo and the checkout
	// minimum check.
	if input.Minimum == 0 || input.AmountPerPackage == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(ErrInvalidPackaging.Error())
	}

	product := &entity.Product{
		Name:             input.Name,
		Price:            input.Price,
		Minimum:          input.Minimum,
		AmountPerPackage: input.AmountPerPackage,
		MaxAvailability:  input.MaxAvailability,
	}

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

// GetProduct retrieves a product by id.
func (s *catalogService) GetProduct(ctx context.Context, id uint64) (*entity.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductDoesNotExist
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// ListProducts retrieves products filtered by name.
func (s *catalogService) ListProducts(ctx context.Context, nameFilter string) ([]*entity.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, nameFilter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}
