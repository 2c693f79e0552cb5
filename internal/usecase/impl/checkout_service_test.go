package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCheckoutServiceForTest(t *testing.T, txManager repository.TransactionManager, publisher *mockSvc.MockEventPublisher) *checkoutService {
	t.Helper()

	return &checkoutService{
		txManager: txManager,
		publisher: publisher,
		logger:    testLogger(),
	}
}

func checkoutFactory(t *testing.T, cartRepo *mockRepo.MockCartRepository, orderRepo *mockRepo.MockOrderRepository) *mockRepo.MockRepositoryFactory {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCartRepository().Return(cartRepo)
	factory.EXPECT().NewOrderRepository().Return(orderRepo)

	return factory
}

func TestCheckoutService_Checkout_Success(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	factory := checkoutFactory(t, mockCartRepo, mockOrderRepo)

	service := newCheckoutServiceForTest(t, passthroughTx(t, factory), mockPublisher)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uint64(3)
	beer := &entity.Product{
		Name:             "Dark beer bottle 0.5l",
		Price:            decimal.RequireFromString("40.00"),
		Minimum:          12,
		AmountPerPackage: 12,
		MaxAvailability:  5000,
	}
	wine := &entity.Product{
		Name:             "Red wine bottle 0.7l",
		Price:            decimal.RequireFromString("1000.00"),
		Minimum:          6,
		AmountPerPackage: 6,
		MaxAvailability:  100,
	}

	mockCartRepo.EXPECT().
		FindLineItemsForCheckout(ctx, userID).
		Return([]*entity.LineItem{
			{ID: 1, CartID: &cartID, Quantity: 24, Product: beer},
			{ID: 2, CartID: &cartID, Quantity: 6, Product: wine},
		}, nil)

	var orderID uuid.UUID
	mockOrderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			orderID = order.ID
			assert.Equal(t, userID, order.UserID)
		}).
		Return(nil)

	mockCartRepo.EXPECT().
		AttachLineItemsToOrder(ctx, userID, mock.AnythingOfType("uuid.UUID")).
		Return(nil)

	mockPublisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Return(nil)

	result, err := service.Checkout(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, orderID, result.OrderID)
	assert.Len(t, result.Items, 2)
	assert.True(t, result.TotalPrice.Equal(decimal.RequireFromString("6960.00")))
}

func TestCheckoutService_Checkout_BelowMinimumAbortsEverything(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCartRepository().Return(mockCartRepo)
	factory.EXPECT().NewOrderRepository().Return(mockRepo.NewMockOrderRepository(t))

	service := newCheckoutServiceForTest(t, passthroughTx(t, factory), mockPublisher)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uint64(3)
	beer := &entity.Product{
		Name:             "Dark beer bottle 0.5l",
		Price:            decimal.RequireFromString("40.00"),
		Minimum:          12,
		AmountPerPackage: 12,
		MaxAvailability:  5000,
	}
	wine := &entity.Product{
		Name:             "Red wine bottle 0.7l",
		Price:            decimal.RequireFromString("1000.00"),
		Minimum:          12,
		AmountPerPackage: 6,
		MaxAvailability:  100,
	}

	// The wine line sits below its minimum; no order may be created and no
	// line may be re-parented, not even the valid beer line.
	mockCartRepo.EXPECT().
		FindLineItemsForCheckout(ctx, userID).
		Return([]*entity.LineItem{
			{ID: 1, CartID: &cartID, Quantity: 24, Product: beer},
			{ID: 2, CartID: &cartID, Quantity: 6, Product: wine},
		}, nil)

	result, err := service.Checkout(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrProductBelowMinimum)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "product_less_than_minimum", appErr.ErrorCode())
	assert.Equal(t, "Red wine bottle 0.7l - minimum: 12 - Requested: 6", appErr.Details())
}

func TestCheckoutService_Checkout_EmptyCartCreatesEmptyOrder(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	factory := checkoutFactory(t, mockCartRepo, mockOrderRepo)

	service := newCheckoutServiceForTest(t, passthroughTx(t, factory), mockPublisher)

	ctx := context.Background()
	userID := uuid.New()

	mockCartRepo.EXPECT().
		FindLineItemsForCheckout(ctx, userID).
		Return([]*entity.LineItem{}, nil)

	mockOrderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	mockCartRepo.EXPECT().
		AttachLineItemsToOrder(ctx, userID, mock.AnythingOfType("uuid.UUID")).
		Return(nil)

	mockPublisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Return(nil)

	result, err := service.Checkout(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, result.Items)
	assert.True(t, result.TotalPrice.IsZero())
}

func TestCheckoutService_Checkout_PublishFailureDoesNotFailCheckout(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)
	factory := checkoutFactory(t, mockCartRepo, mockOrderRepo)

	service := newCheckoutServiceForTest(t, passthroughTx(t, factory), mockPublisher)

	ctx := context.Background()
	userID := uuid.New()
	cartID := uint64(3)
	beer := &entity.Product{
		Name:             "Dark beer bottle 0.5l",
		Price:            decimal.RequireFromString("40.00"),
		Minimum:          12,
		AmountPerPackage: 12,
		MaxAvailability:  5000,
	}

	mockCartRepo.EXPECT().
		FindLineItemsForCheckout(ctx, userID).
		Return([]*entity.LineItem{
			{ID: 1, CartID: &cartID, Quantity: 12, Product: beer},
		}, nil)

	mockOrderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	mockCartRepo.EXPECT().
		AttachLineItemsToOrder(ctx, userID, mock.AnythingOfType("uuid.UUID")).
		Return(nil)

	mockPublisher.EXPECT().
		PublishOrderPlaced(ctx, mock.AnythingOfType("*service.OrderPlacedEvent")).
		Return(errors.New("broker unavailable"))

	// The order is already committed; the publish failure is only logged.
	result, err := service.Checkout(ctx, userID)
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestCheckoutService_Checkout_SnapshotError(t *testing.T) {
	mockCartRepo := mockRepo.NewMockCartRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCartRepository().Return(mockCartRepo)
	factory.EXPECT().NewOrderRepository().Return(mockRepo.NewMockOrderRepository(t))

	service := newCheckoutServiceForTest(t, passthroughTx(t, factory), mockPublisher)

	ctx := context.Background()
	userID := uuid.New()

	mockCartRepo.EXPECT().
		FindLineItemsForCheckout(ctx, userID).
		Return(nil, errors.New("db error"))

	result, err := service.Checkout(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, result)
}
