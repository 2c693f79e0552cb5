// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type cartService struct {
	cartRepo  repository.CartRepository
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo  repository.CartRepository
	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:  params.CartRepo,
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// AddProduct merges the requested quantity into the user's cart.
//
// The whole get-or-create / merge / validate / save sequence runs in one
// transaction with the existing line row locked, so concurrent adds for the
// same (user, product) serialize instead of losing increments, and a failed
// validation rolls back the in-flight accumulation without a trace.
//
// Two concurrent first adds of the same product both miss the locked read
// (there is no row to lock yet) and race on the insert. The loser retries
// once; by then the winner's row exists and the merge path takes over.
func (s *cartService) AddProduct(ctx context.Context, userID uuid.UUID, productID, quantity uint64) (*usecase.LineItemView, error) {
	view, err := s.mergeProduct(ctx, userID, productID, quantity)
	if errors.Is(err, repository.ErrLineItemConflict) {
		view, err = s.mergeProduct(ctx, userID, productID, quantity)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Debug("product added to cart",
		slog.String("userID", userID.String()),
		slog.Uint64("productID", productID),
		slog.Uint64("quantity", quantity),
	)

	return view, nil
}

func (s *cartService) mergeProduct(ctx context.Context, userID uuid.UUID, productID, quantity uint64) (*usecase.LineItemView, error) {
	var view usecase.LineItemView

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		cartRepo := f.NewCartRepository()
		productRepo := f.NewProductRepository()

		cart, err := cartRepo.GetOrCreateCart(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to get or create cart")
		}

		product, err := productRepo.FindProductByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductDoesNotExist
			}

			return errors.Wrap(err, "failed to find product")
		}

		item, err := cartRepo.FindLineItemForUpdate(ctx, cart.ID, productID)
		switch {
		case err == nil:
			// Re-adding the same product accumulates; it never overwrites.
			item.Quantity += quantity
		case errors.Is(err, repository.ErrLineItemNotFound):
			cartID := cart.ID
			item = &entity.LineItem{
				CartID:    &cartID,
				ProductID: productID,
				Quantity:  quantity,
			}
		default:
			return errors.Wrap(err, "failed to find line item")
		}

		// Validate the post-merge quantity. Returning the error rolls the
		// transaction back, so the accumulation above is discarded.
		if err := entity.ValidateQuantity(product, item.Quantity); err != nil {
			return err
		}

		if err := cartRepo.SaveLineItem(ctx, item); err != nil {
			return errors.Wrap(err, "failed to save line item")
		}

		item.Product = product
		view = usecase.NewLineItemView(item)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &view, nil
}

// UpdateQuantity replaces a line item's quantity with an absolute value.
//
// Ownership is checked before anything else: updating someone else's line item
// always fails, regardless of the new quantity. The product minimum is not
// enforced here; only availability and package integrity gate cart updates.
func (s *cartService) UpdateQuantity(ctx context.Context, userID uuid.UUID, lineItemID, quantity uint64) (*usecase.LineItemView, error) {
	var view usecase.LineItemView

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		cartRepo := f.NewCartRepository()

		item, err := cartRepo.FindLineItemByID(ctx, lineItemID)
		if err != nil {
			if errors.Is(err, repository.ErrLineItemNotFound) {
				return domainerrors.ErrLineItemNotFound
			}

			return errors.Wrap(err, "failed to find line item")
		}

		if item.Cart == nil || item.Cart.UserID != userID {
			return domainerrors.ErrProductRequestFail
		}

		item.Quantity = quantity
		if err := entity.ValidateQuantity(item.Product, item.Quantity); err != nil {
			return err
		}

		if err := cartRepo.SaveLineItem(ctx, item); err != nil {
			return errors.Wrap(err, "failed to save line item")
		}

		view = usecase.NewLineItemView(item)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &view, nil
}

// RemoveLineItem deletes a line item from the user's cart. Removal is not
// subject to quantity validation.
func (s *cartService) RemoveLineItem(ctx context.Context, userID uuid.UUID, lineItemID uint64) error {
	return s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		cartRepo := f.NewCartRepository()

		item, err := cartRepo.FindLineItemByID(ctx, lineItemID)
		if err != nil {
			if errors.Is(err, repository.ErrLineItemNotFound) {
				return domainerrors.ErrLineItemNotFound
			}

			return errors.Wrap(err, "failed to find line item")
		}

		if item.Cart == nil || item.Cart.UserID != userID {
			return domainerrors.ErrProductRequestFail
		}

		if err := cartRepo.DeleteLineItem(ctx, item.ID); err != nil {
			return errors.Wrap(err, "failed to delete line item")
		}

		return nil
	})
}

// GetCart returns the user's cart lines and the aggregate total price.
func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*usecase.CartView, error) {
	items, err := s.cartRepo.FindLineItemsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart line items")
	}

	view := &usecase.CartView{
		TotalPrice: decimal.Zero,
		Items:      make([]usecase.LineItemView, 0, len(items)),
	}
	for _, item := range items {
		view.Items = append(view.Items, usecase.NewLineItemView(item))
		view.TotalPrice = view.TotalPrice.Add(item.PartialPrice())
	}

	return view, nil
}
