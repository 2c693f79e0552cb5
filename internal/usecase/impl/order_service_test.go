package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_GetOrder_Success(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	service := &orderService{orderRepo: mockOrderRepo}

	ctx := context.Background()
	userID := uuid.New()
	orderID := uuid.New()
	order := &entity.Order{
		ID:     orderID,
		UserID: userID,
		Items: []*entity.LineItem{
			{
				ID:       1,
				OrderID:  &orderID,
				Quantity: 24,
				Product: &entity.Product{
					Name:             "Dark beer bottle 0.5l",
					Price:            decimal.RequireFromString("40.00"),
					AmountPerPackage: 12,
				},
			},
		},
	}

	mockOrderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(order, nil)

	view, err := service.GetOrder(ctx, userID, orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, view.ID)
	require.Len(t, view.Items, 1)
	assert.True(t, view.TotalPrice.Equal(decimal.RequireFromString("960.00")))
}

func TestOrderService_GetOrder_OtherUsersOrderIsHidden(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	service := &orderService{orderRepo: mockOrderRepo}

	ctx := context.Background()
	orderID := uuid.New()
	order := &entity.Order{ID: orderID, UserID: uuid.New()}

	mockOrderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(order, nil)

	// Not-found instead of forbidden, so order ids cannot be probed.
	view, err := service.GetOrder(ctx, uuid.New(), orderID)
	require.Error(t, err)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	service := &orderService{orderRepo: mockOrderRepo}

	ctx := context.Background()
	orderID := uuid.New()

	mockOrderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	view, err := service.GetOrder(ctx, uuid.New(), orderID)
	require.Error(t, err)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListOrders(t *testing.T) {
	mockOrderRepo := mockRepo.NewMockOrderRepository(t)
	service := &orderService{orderRepo: mockOrderRepo}

	ctx := context.Background()
	userID := uuid.New()

	mockOrderRepo.EXPECT().
		FindOrdersByUser(ctx, userID).
		Return([]*entity.Order{
			{ID: uuid.New(), UserID: userID},
			{ID: uuid.New(), UserID: userID},
		}, nil)

	views, err := service.ListOrders(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, views, 2)
}
