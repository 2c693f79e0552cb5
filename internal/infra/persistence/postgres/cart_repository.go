package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// GetOrCreateCart resolves the user's cart, creating it on the first add.
// Two concurrent first adds race on the unique user_id index; the loser of
// the insert re-reads the winner's row.
func (repo *cartRepository) GetOrCreateCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	var cartM model.CartModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&cartM).Error
	if err == nil {
		return toCartDomain(&cartM), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "failed to find cart by user")
	}

	cartM = model.CartModel{UserID: userID}
	if err := repo.db.WithContext(ctx).Create(&cartM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Lost the race; the cart exists now.
			if err := repo.db.WithContext(ctx).
				Where("user_id = ?", userID).
				First(&cartM).Error; err != nil {
				return nil, errors.Wrap(err, "failed to re-read cart after insert race")
			}

			return toCartDomain(&cartM), nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	return toCartDomain(&cartM), nil
}

// FindLineItemForUpdate retrieves the (cart, product) line item under a row
// lock, serializing concurrent merges on the same line.
func (repo *cartRepository) FindLineItemForUpdate(ctx context.Context, cartID, productID uint64) (*entity.LineItem, error) {
	var itemM model.LineItemModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLineItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find line item for update")
	}

	return toLineItemDomain(&itemM), nil
}

// FindLineItemByID retrieves a cart line item with product and cart loaded.
// Items already moved to an order are treated as not found.
func (repo *cartRepository) FindLineItemByID(ctx context.Context, id uint64) (*entity.LineItem, error) {
	var itemM model.LineItemModel

	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Preload("Cart").
		Where("id = ? AND cart_id IS NOT NULL", id).
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLineItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find line item by ID")
	}

	return toLineItemDomain(&itemM), nil
}

// SaveLineItem inserts or updates a line item.
func (repo *cartRepository) SaveLineItem(ctx context.Context, item *entity.LineItem) error {
	itemM := fromLineItemDomain(item)

	if err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Concurrent insert of the same (cart, product) line slipped in
			// between our locked read and this write. The caller can retry in
			// a fresh transaction; the locked read will find the row then.
			return errors.Wrap(repository.ErrLineItemConflict, err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save line item")
	}

	item.ID = itemM.ID

	return nil
}

// DeleteLineItem removes a line item row.
func (repo *cartRepository) DeleteLineItem(ctx context.Context, id uint64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LineItemModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete line item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLineItemNotFound
	}

	return nil
}

// FindLineItemsByUser retrieves all line items of the user's cart with
// products loaded.
func (repo *cartRepository) FindLineItemsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.LineItem, error) {
	var itemModels []*model.LineItemModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN shopping_carts ON shopping_carts.id = line_items.cart_id").
		Where("shopping_carts.user_id = ?", userID).
		Preload("Product").
		Order("line_items.id").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find line items by user")
	}

	return toLineItemsDomain(itemModels), nil
}

// FindLineItemsForCheckout retrieves the user's cart lines with row locks
// held until the surrounding transaction ends, so no concurrent add or update
// for this user can interleave with the checkout.
func (repo *cartRepository) FindLineItemsForCheckout(ctx context.Context, userID uuid.UUID) ([]*entity.LineItem, error) {
	var itemModels []*model.LineItemModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{
			Strength: clause.LockingStrengthUpdate,
			Table:    clause.Table{Name: "line_items"},
		}).
		Joins("JOIN shopping_carts ON shopping_carts.id = line_items.cart_id").
		Where("shopping_carts.user_id = ?", userID).
		Preload("Product").
		Order("line_items.id").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find line items for checkout")
	}

	return toLineItemsDomain(itemModels), nil
}

// AttachLineItemsToOrder re-parents every cart line of the user to the order
// in a single statement.
func (repo *cartRepository) AttachLineItemsToOrder(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) error {
	subQuery := repo.db.Model(&model.CartModel{}).
		Select("id").
		Where("user_id = ?", userID)

	if err := repo.db.WithContext(ctx).
		Model(&model.LineItemModel{}).
		Where("cart_id IN (?)", subQuery).
		Updates(map[string]any{
			"cart_id":  nil,
			"order_id": orderID,
		}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to attach line items to order")
	}

	return nil
}

// --- Mapper Functions ---

// toCartDomain converts a GORM CartModel to a domain Cart entity.
func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	return &entity.Cart{
		ID:        data.ID,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toLineItemDomain converts a GORM LineItemModel to a domain LineItem entity.
func toLineItemDomain(data *model.LineItemModel) *entity.LineItem {
	if data == nil {
		return nil
	}

	return &entity.LineItem{
		ID:        data.ID,
		CartID:    data.CartID,
		OrderID:   data.OrderID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		Product:   toProductDomain(data.Product),
		Cart:      toCartDomain(data.Cart),
	}
}

// toLineItemsDomain converts a slice of GORM LineItemModels to domain entities.
func toLineItemsDomain(data []*model.LineItemModel) []*entity.LineItem {
	items := make([]*entity.LineItem, 0, len(data))
	for _, itemM := range data {
		items = append(items, toLineItemDomain(itemM))
	}

	return items
}

// fromLineItemDomain converts a domain LineItem entity to a GORM LineItemModel.
func fromLineItemDomain(data *entity.LineItem) *model.LineItemModel {
	if data == nil {
		return nil
	}

	return &model.LineItemModel{
		ID:        data.ID,
		CartID:    data.CartID,
		ProductID: data.ProductID,
		OrderID:   data.OrderID,
		Quantity:  data.Quantity,
	}
}
