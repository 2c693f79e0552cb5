package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type checkoutService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// Checkout converts the user's cart into a new immutable order.
//
// The snapshot, the minimum checks, the order insert and the re-parenting of
// every line item all happen inside one transaction holding row locks on the
// cart lines. A single below-minimum line aborts the whole operation and the
// rollback leaves the cart exactly as it was; partial detachment is never
// observable.
func (s *checkoutService) Checkout(ctx context.Context, userID uuid.UUID) (*usecase.CheckoutResult, error) {
	var result usecase.CheckoutResult

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		cartRepo := f.NewCartRepository()
		orderRepo := f.NewOrderRepository()

		items, err := cartRepo.FindLineItemsForCheckout(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to snapshot cart line items")
		}

		total := decimal.Zero
		views := make([]usecase.LineItemView, 0, len(items))
		for _, item := range items {
			if item.Quantity < item.Product.Minimum {
				return domainerrors.ErrProductBelowMinimum.WithDetails(fmt.Sprintf(
					"%s - minimum: %d - Requested: %d",
					item.Product.Name, item.Product.Minimum, item.Quantity,
				))
			}

			total = total.Add(item.PartialPrice())
			views = append(views, usecase.NewLineItemView(item))
		}

		order := &entity.Order{
			ID:     uuid.New(),
			UserID: userID,
		}
		if err := orderRepo.CreateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		if err := cartRepo.AttachLineItemsToOrder(ctx, userID, order.ID); err != nil {
			return errors.Wrap(err, "failed to attach line items to order")
		}

		result = usecase.CheckoutResult{
			OrderID:    order.ID,
			TotalPrice: total,
			Items:      views,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishOrderPlaced(ctx, userID, &result)

	return &result, nil
}

// publishOrderPlaced emits the order-placed event. Publishing is best-effort;
// the order is already committed, so a failure is only logged.
func (s *checkoutService) publishOrderPlaced(ctx context.Context, userID uuid.UUID, result *usecase.CheckoutResult) {
	event := &service.OrderPlacedEvent{
		OrderID:    result.OrderID,
		UserID:     userID,
		TotalPrice: result.TotalPrice.String(),
		ItemCount:  len(result.Items),
		PlacedAt:   time.Now().UTC(),
	}

	if err := s.publisher.PublishOrderPlaced(ctx, event); err != nil {
		s.logger.Error("failed to publish order placed event",
			slog.String("orderID", result.OrderID.String()),
			slog.Any("error", err),
		)

		return
	}

	s.logger.Info("order placed",
		slog.String("orderID", result.OrderID.String()),
		slog.String("userID", userID.String()),
		slog.String("totalPrice", result.TotalPrice.String()),
		slog.Int("itemCount", len(result.Items)),
	)
}
