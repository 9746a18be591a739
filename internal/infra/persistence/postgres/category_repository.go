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

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new instance of categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

// FindByID retrieves a single category by its unique ID.
func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	err := r.db.WithContext(ctx).First(&categoryModel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return toCategoryEntity(&categoryModel), nil
}

// List retrieves all categories ordered by name.
func (r *categoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryModel := range categoryModels {
		categories = append(categories, toCategoryEntity(categoryModel))
	}

	return categories, nil
}

// Create persists a new category. Names are unique.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := &model.CategoryModel{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
	if err := r.db.WithContext(ctx).Create(categoryModel).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCategoryName
		}

		return errors.Wrap(err, "failed to create category")
	}
	category.ID = categoryModel.ID
	category.CreatedAt = categoryModel.CreatedAt
	category.UpdatedAt = categoryModel.UpdatedAt

	return nil
}

// Update modifies an existing category.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	result := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("id = ?", category.ID).
		Updates(map[string]any{
			"name":        category.Name,
			"description": category.Description,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateCategoryName
		}

		return errors.Wrap(result.Error, "failed to update category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// Delete removes a category.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CategoryModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete category")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

func toCategoryEntity(categoryModel *model.CategoryModel) *entity.Category {
	return &entity.Category{
		ID:          categoryModel.ID,
		Name:        categoryModel.Name,
		Description: categoryModel.Description,
		CreatedAt:   categoryModel.CreatedAt,
		UpdatedAt:   categoryModel.UpdatedAt,
	}
}
