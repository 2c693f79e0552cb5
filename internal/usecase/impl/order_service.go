package impl

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type orderService struct {
	orderRepo repository.OrderRepository
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
	}
}

// GetOrder retrieves one of the user's orders. Another user's order is
// reported as not found rather than forbidden, so order ids cannot be probed.
func (s *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*usecase.OrderView, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if order.UserID != userID {
		return nil, domainerrors.ErrOrderNotFound
	}

	return newOrderView(order), nil
}

// ListOrders retrieves all orders of the user, newest first.
func (s *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]*usecase.OrderView, error) {
	orders, err := s.orderRepo.FindOrdersByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	views := make([]*usecase.OrderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, newOrderView(order))
	}

	return views, nil
}

func newOrderView(order *entity.Order) *usecase.OrderView {
	view := &usecase.OrderView{
		ID:         order.ID,
		CreatedAt:  order.CreatedAt,
		TotalPrice: decimal.Zero,
		Items:      make([]usecase.LineItemView, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		view.Items = append(view.Items, usecase.NewLineItemView(item))
		view.TotalPrice = view.TotalPrice.Add(item.PartialPrice())
	}

	return view
}
