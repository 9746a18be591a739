package repository

import (
	"context"
	"errors"

	"optika/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// ErrDuplicateCategoryName is returned when a category name is already taken.
var ErrDuplicateCategoryName = errors.New("duplicate category name")

// CategoryRepository defines the standard operations for category persistence.
type CategoryRepository interface {
	// FindByID retrieves a single category by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// List retrieves all categories ordered by name.
	List(ctx context.Context) ([]*entity.Category, error)

	// Create persists a new category. Names are unique.
	Create(ctx context.Context, category *entity.Category) error

	// Update modifies an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category. The caller is responsible for the
	// referential guard against attached products.
	Delete(ctx context.Context, id uuid.UUID) error
}
