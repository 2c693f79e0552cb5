package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := &catalogService{productRepo: mockProductRepo}

	ctx := context.Background()

	mockProductRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := service.CreateProduct(ctx, usecase.CreateProductInput{
		Name:             "Dark beer bottle 0.5l",
		Price:            decimal.RequireFromString("40.00"),
		Minimum:          12,
		AmountPerPackage: 12,
		MaxAvailability:  5000,
	})
	require.NoError(t, err)
	assert.Equal(t, "Dark beer bottle 0.5l", product.Name)
}

func TestCatalogService_CreateProduct_RejectsZeroPackaging(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := &catalogService{productRepo: mockProductRepo}

	ctx := context.Background()

	_, err := service.CreateProduct(ctx, usecase.CreateProductInput{
		Name:             "Broken",
		Price:            decimal.RequireFromString("1.00"),
		Minimum:          0,
		AmountPerPackage: 12,
		MaxAvailability:  100,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = service.CreateProduct(ctx, usecase.CreateProductInput{
		Name:             "Broken",
		Price:            decimal.RequireFromString("1.00"),
		Minimum:          12,
		AmountPerPackage: 0,
		MaxAvailability:  100,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := &catalogService{productRepo: mockProductRepo}

	ctx := context.Background()

	mockProductRepo.EXPECT().
		FindProductByID(ctx, uint64(999)).
		Return(nil, repository.ErrProductNotFound)

	product, err := service.GetProduct(ctx, 999)
	require.Error(t, err)
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductDoesNotExist)
}

func TestCatalogService_ListProducts_PassesNameFilter(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := &catalogService{productRepo: mockProductRepo}

	ctx := context.Background()

	mockProductRepo.EXPECT().
		ListProducts(ctx, "beer").
		Return([]*entity.Product{{ID: 1, Name: "Dark beer bottle 0.5l"}}, nil)

	products, err := service.ListProducts(ctx, "beer")
	require.NoError(t, err)
	require.Len(t, products, 1)
}

func TestCatalogService_ListProducts_RepositoryError(t *testing.T) {
	mockProductRepo := mockRepo.NewMockProductRepository(t)
	service := &catalogService{productRepo: mockProductRepo}

	ctx := context.Background()

	mockProductRepo.EXPECT().
		ListProducts(ctx, "").
		Return(nil, errors.New("db error"))

	products, err := service.ListProducts(ctx, "")
	require.Error(t, err)
	assert.Nil(t, products)
}
