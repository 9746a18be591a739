// Package impl contains the concrete implementations of the application's
// use case interfaces.
package impl

import (
	"context"
	"log/slog"

	"optika/internal/domain/entity"
	domainerrors "optika/internal/domain/errors"
	"optika/internal/domain/repository"
	"optika/internal/domain/service"
	"optika/internal/usecase"
	"optika/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	objectStore  service.ObjectStore
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	ObjectStore  service.ObjectStore
	Logger       *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		objectStore:  params.ObjectStore,
		logger:       params.Logger,
	}
}

// ListProducts retrieves products matching the filter, newest first.
func (s *catalogService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	products, err := s.productRepo.List(ctx, filter)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return products, nil
}

// GetProduct retrieves a single product with its category.
func (s *catalogService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return product, nil
}

// CreateProduct adds a product to the catalog.
func (s *catalogService) CreateProduct(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	if _, err := s.requireCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		ImageURL:    util.NormalizeImageURL(input.ImageURL),
		FaceShape:   input.FaceShape,
		CategoryID:  input.CategoryID,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "Product created",
		slog.String("productId", product.ID.String()),
		slog.String("name", product.Name),
	)

	return s.GetProduct(ctx, product.ID)
}

// UpdateProduct replaces the writable fields of a product.
func (s *catalogService) UpdateProduct(ctx context.Context, id uuid.UUID, input usecase.ProductInput) (*entity.Product, error) {
	if _, err := s.requireCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	product := &entity.Product{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		ImageURL:    util.NormalizeImageURL(input.ImageURL),
		FaceShape:   input.FaceShape,
		CategoryID:  input.CategoryID,
	}
	if err := s.productRepo.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return s.GetProduct(ctx, id)
}

// DeleteProduct removes a product from the catalog.
func (s *catalogService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return nil
}

// UploadProductImage stores an image for the product and updates its URL.
func (s *catalogService) UploadProductImage(ctx context.Context, id uuid.UUID, contentType string, data []byte) (string, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return "", err
	}

	url, err := s.objectStore.SaveProductImage(ctx, id, contentType, data)
	if err != nil {
		return "", domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	product.ImageURL = url
	if err := s.productRepo.Update(ctx, product); err != nil {
		return "", domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return url, nil
}

// ListCategories retrieves all categories ordered by name.
func (s *catalogService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return categories, nil
}

// CreateCategory adds a category. Duplicate names are rejected.
func (s *catalogService) CreateCategory(ctx context.Context, input usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateCategoryName) {
			return nil, domainerrors.ErrCategoryNameTaken
		}

		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return category, nil
}

// UpdateCategory replaces the writable fields of a category.
func (s *catalogService) UpdateCategory(ctx context.Context, id uuid.UUID, input usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		switch {
		case errors.Is(err, repository.ErrCategoryNotFound):
			return nil, domainerrors.ErrCategoryNotFound
		case errors.Is(err, repository.ErrDuplicateCategoryName):
			return nil, domainerrors.ErrCategoryNameTaken
		default:
			return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
		}
	}

	return s.requireCategory(ctx, id)
}

// DeleteCategory removes a category unless products still reference it.
func (s *catalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	count, err := s.productRepo.CountByCategory(ctx, id)
	if err != nil {
		return domainerrors.ErrInternalError.WithDetails(err.Error())
	}
	if count > 0 {
		return domainerrors.ErrCategoryInUse
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return nil
}

func (s *catalogService) requireCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	return category, nil
}
