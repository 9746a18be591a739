package postgres

import (
	"context"

	"optika/internal/domain/entity"
	"optika/internal/domain/repository"
	"optika/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"optika/internal/infra/persistence/model"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new instance of productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a product with its category preloaded.
func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productModel model.ProductModel
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&productModel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductEntity(&productModel), nil
}

// List retrieves products matching the filter, newest first.
func (r *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := r.db.WithContext(ctx).
		Preload("Category").
		Order("created_at DESC")
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.FaceShape != nil {
		query = query.Where("face_shape = ?", *filter.FaceShape)
	}

	var productModels []*model.ProductModel
	if err := query.Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productModel := range productModels {
		products = append(products, toProductEntity(productModel))
	}

	return products, nil
}

// Create persists a new product.
func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productModel := toProductModel(product)
	if err := r.db.WithContext(ctx).Create(productModel).Error; err != nil {
		return errors.Wrap(err, "failed to create product")
	}
	// Copy back database-generated values.
	product.ID = productModel.ID
	product.CreatedAt = productModel.CreatedAt
	product.UpdatedAt = productModel.UpdatedAt

	return nil
}

// Update modifies an existing product.
func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productModel := toProductModel(product)
	result := r.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Select("name", "description", "price", "stock", "image_url", "face_shape", "category_id").
		Updates(productModel)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product.
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ProductModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DecrementStock atomically subtracts qty from stock. The WHERE guard keeps
// stock from going negative even when concurrent checkouts race for the last
// unit; the loser sees zero affected rows and gets ErrInsufficientStock.
func (r *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, qty int) error {
	result := r.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND stock >= ?", id, qty).
		UpdateColumn("stock", gorm.Expr("stock - ?", qty))
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return repository.ErrInsufficientStock
		}

		return errors.Wrap(result.Error, "failed to decrement stock")
	}
	if result.RowsAffected == 0 {
		// Either the product does not exist or its stock cannot cover qty.
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&model.ProductModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check product existence")
		}
		if count == 0 {
			return repository.ErrProductNotFound
		}

		return repository.ErrInsufficientStock
	}

	return nil
}

// CountByCategory returns how many products reference a category.
func (r *productRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count products by category")
	}

	return count, nil
}

func toProductEntity(productModel *model.ProductModel) *entity.Product {
	product := &entity.Product{
		ID:          productModel.ID,
		Name:        productModel.Name,
		Description: productModel.Description,
		Price:       productModel.Price,
		Stock:       productModel.Stock,
		ImageURL:    productModel.ImageURL,
		FaceShape:   productModel.FaceShape,
		CategoryID:  productModel.CategoryID,
		CreatedAt:   productModel.CreatedAt,
		UpdatedAt:   productModel.UpdatedAt,
	}
	if productModel.Category != nil {
		product.Category = toCategoryEntity(productModel.Category)
	}

	return product
}

func toProductModel(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Stock:       product.Stock,
		ImageURL:    product.ImageURL,
		FaceShape:   product.FaceShape,
		CategoryID:  product.CategoryID,
	}
}
