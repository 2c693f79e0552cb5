package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItemView is the serialized shape of a cart or order line.
type LineItemView struct {
	ID               uint64          `json:"id"`
	ProductName      string          `json:"product_name"`
	Price            decimal.Decimal `json:"price"`
	Minimum          uint64          `json:"minimum"`
	AmountPerPackage uint64          `json:"amount_per_package"`
	Quantity         uint64          `json:"quantity"`
	PartialPrice     decimal.Decimal `json:"partial_price"`
	PackageIntegrity bool            `json:"package_integrity"`
}

// NewLineItemView builds the view of a line item; the item's product must be
// loaded.
func NewLineItemView(item *entity.LineItem) LineItemView {
	return LineItemView{
		ID:               item.ID,
		ProductName:      item.Product.Name,
		Price:            item.Product.Price,
		Minimum:          item.Product.Minimum,
		AmountPerPackage: item.Product.AmountPerPackage,
		Quantity:         item.Quantity,
		PartialPrice:     item.PartialPrice(),
		PackageIntegrity: item.PackageIntegrity(),
	}
}

// CartView is the user's cart with its aggregate total.
type CartView struct {
	TotalPrice decimal.Decimal `json:"total_price"`
	Items      []LineItemView  `json:"items"`
}

// CartUsecase owns per-user cart state. Every mutation revalidates the
// resulting quantity against the product's packaging constraints before
// anything is persisted.
type CartUsecase interface {
	// AddProduct merges the requested quantity into the user's cart line for
	// the product, creating cart and line as needed. Repeated adds accumulate.
	AddProduct(ctx context.Context, userID uuid.UUID, productID, quantity uint64) (*LineItemView, error)

	// UpdateQuantity replaces the line item's quantity with an absolute value
	// after an ownership check. The product minimum is intentionally not
	// enforced here.
	UpdateQuantity(ctx context.Context, userID uuid.UUID, lineItemID, quantity uint64) (*LineItemView, error)

	// RemoveLineItem deletes a line item from the user's cart after an
	// ownership check. No quantity validation applies to removal.
	RemoveLineItem(ctx context.Context, userID uuid.UUID, lineItemID uint64) error

	// GetCart returns all line items of the user's cart and their total price.
	GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error)
}
