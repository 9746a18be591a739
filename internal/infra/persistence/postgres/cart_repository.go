package postgres

import (
	"context"

	"optika/internal/domain/entity"
	"optika/internal/domain/repository"
	"optika/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"optika/internal/infra/persistence/model"
)

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a new instance of cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// FindLine retrieves the visitor's line for a product.
func (r *cartRepository) FindLine(ctx context.Context, visitorID string, productID uuid.UUID) (*entity.CartItem, error) {
	var itemModel model.CartItemModel
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Category").
		First(&itemModel, "visitor_id = ? AND product_id = ?", visitorID, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart line")
	}

	return toCartItemEntity(&itemModel), nil
}

// ListByVisitor retrieves all lines for a visitor, oldest first so the cart
// keeps a stable display order.
func (r *cartRepository) ListByVisitor(ctx context.Context, visitorID string) ([]*entity.CartItem, error) {
	var itemModels []*model.CartItemModel
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Category").
		Where("visitor_id = ?", visitorID).
		Order("created_at ASC").
		Find(&itemModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart lines")
	}

	items := make([]*entity.CartItem, 0, len(itemModels))
	for _, itemModel := range itemModels {
		items = append(items, toCartItemEntity(itemModel))
	}

	return items, nil
}

// Save creates the line or overwrites its quantity when the (visitor,
// product) pair already exists. The upsert rides on the composite unique
// index, so concurrent writers resolve last-write-wins.
func (r *cartRepository) Save(ctx context.Context, item *entity.CartItem) error {
	itemModel := &model.CartItemModel{
		ID:        item.ID,
		VisitorID: item.VisitorID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "visitor_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{"quantity": item.Quantity}),
		}).
		Create(itemModel).Error
	if err != nil {
		return errors.Wrap(err, "failed to save cart line")
	}
	item.ID = itemModel.ID
	item.CreatedAt = itemModel.CreatedAt
	item.UpdatedAt = itemModel.UpdatedAt

	return nil
}

// DeleteLine removes the visitor's line for a product.
func (r *cartRepository) DeleteLine(ctx context.Context, visitorID string, productID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&model.CartItemModel{}, "visitor_id = ? AND product_id = ?", visitorID, productID)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete cart line")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// ClearVisitor removes every line belonging to a visitor. Clearing an empty
// cart is not an error.
func (r *cartRepository) ClearVisitor(ctx context.Context, visitorID string) error {
	err := r.db.WithContext(ctx).
		Delete(&model.CartItemModel{}, "visitor_id = ?", visitorID).Error
	if err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

func toCartItemEntity(itemModel *model.CartItemModel) *entity.CartItem {
	item := &entity.CartItem{
		ID:        itemModel.ID,
		VisitorID: itemModel.VisitorID,
		ProductID: itemModel.ProductID,
		Quantity:  itemModel.Quantity,
		CreatedAt: itemModel.CreatedAt,
		UpdatedAt: itemModel.UpdatedAt,
	}
	if itemModel.Product != nil {
		item.Product = toProductEntity(itemModel.Product)
	}

	return item
}
