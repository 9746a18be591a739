package impl

import (
	"context"
	"log/slog"
	"testing"

	"optika/internal/domain/entity"
	domainerrors "optika/internal/domain/errors"
	"optika/internal/domain/repository"
	"optika/internal/mocks"
	"optika/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixture struct {
	productRepo  *mocks.ProductRepository
	categoryRepo *mocks.CategoryRepository
	objectStore  *mocks.ObjectStore
	svc          usecase.CatalogUsecase
}

func newCatalogServiceFixture(t *testing.T) *catalogServiceFixture {
	t.Helper()

	f := &catalogServiceFixture{
		productRepo:  mocks.NewProductRepository(t),
		categoryRepo: mocks.NewCategoryRepository(t),
		objectStore:  mocks.NewObjectStore(t),
	}
	f.svc = NewCatalogService(CatalogServiceParams{
		ProductRepo:  f.productRepo,
		CategoryRepo: f.categoryRepo,
		ObjectStore:  f.objectStore,
		Logger:       slog.New(slog.DiscardHandler),
	})

	return f
}

func TestCatalogService_CreateProduct_NormalizesImgurURL(t *testing.T) {
	f := newCatalogServiceFixture(t)
	ctx := context.Background()
	categoryID := uuid.New()
	productID := uuid.New()

	f.categoryRepo.EXPECT().FindByID(ctx, categoryID).
		Return(&entity.Category{ID: categoryID, Name: "Нарны шил"}, nil)
	f.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) {
			product := args.Get(1).(*entity.Product)
			assert.Equal(t, "https://i.imgur.com/abc123.jpg", product.ImageURL)
			product.ID = productID
		}).
		Return(nil)
	f.productRepo.EXPECT().FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, ImageURL: "https://i.imgur.com/abc123.jpg"}, nil)

	product, err := f.svc.CreateProduct(ctx, usecase.ProductInput{
		Name:       "Ray-Ban Aviator",
		Price:      decimal.NewFromInt(250000),
		Stock:      10,
		ImageURL:   "https://imgur.com/abc123",
		CategoryID: categoryID,
	})

	require.NoError(t, err)
	assert.Equal(t, productID, product.ID)
}

func TestCatalogService_CreateProduct_CategoryMissing(t *testing.T) {
	f := newCatalogServiceFixture(t)
	ctx := context.Background()
	categoryID := uuid.New()

	f.categoryRepo.EXPECT().FindByID(ctx, categoryID).
		Return(nil, repository.ErrCategoryNotFound)

	_, err := f.svc.CreateProduct(ctx, usecase.ProductInput{
		Name:       "Ray-Ban Aviator",
		Price:      decimal.NewFromInt(250000),
		CategoryID: categoryID,
	})

	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCatalogService_UpdateProduct_NotFound(t *testing.T) {
	f := newCatalogServiceFixture(t)
	ctx := context.Background()
	categoryID := uuid.New()
	productID := uuid.New()

	f.categoryRepo.EXPECT().FindByID(ctx, categoryID).
		Return(&entity.Category{ID: categoryID}, nil)
	f.productRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Product")).
		Return(repository.ErrProductNotFound)

	_, err := f.svc.UpdateProduct(ctx, productID, usecase.ProductInput{
		Name:       "Ray-Ban Aviator",
		CategoryID: categoryID,
	})

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_UploadProductImage_UpdatesURL(t *testing.T) {
	f := newCatalogServiceFixture(t)
	ctx := context.Background()
	productID := uuid.New()
	data := []byte("png-bytes")

	f.productRepo.EXPECT().FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, ImageURL: "https://old.example/img.jpg"}, nil)
	f.objectStore.EXPECT().SaveProductImage(ctx, productID, "image/png", data).
		Return("https://cdn.example/products/new.png", nil)
	f.productRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) {
			product := args.Get(1).(*entity.Product)
			assert.Equal(t, "https://cdn.example/products/new.png", product.ImageURL)
		}).
		Return(nil)

	url, err := f.svc.UploadProductImage(ctx, productID, "image/png", data)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/products/new.png", url)
}

func TestCatalogService_CategoryRoundTrip(t *testing.T) {
	f := newCatalogServiceFixture(t)
	ctx := context.Background()
	categoryID := uuid.New()

	f.categoryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Category")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Category).ID = categoryID
		}).
		Return(nil)

	created, err := f.svc.CreateCategory(ctx, usecase.CategoryInput{Name: "Нарны шил", Description: "UV хамгаалалттай"})
	require.NoError(t, err)
	assert.Equal(t, categoryID, created.ID)

	f.categoryRepo.EXPECT().List(ctx).Return([]*entity.Category{created}, nil)

	categories, err := f.svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Нарны шил", categories[0].Name)
}

func TestCatalogService_CreateCategory_DuplicateName(t *testing.T) {
	f := newCatalogServiceFixture(t)
	ctx := context.Background()

	f.categoryRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Category")).
		Return(repository.ErrDuplicateCategoryName)

	_, err := f.svc.CreateCategory(ctx, usecase.CategoryInput{Name: "Нарны шил"})

	assert.ErrorIs(t, err, domainerrors.ErrCategoryNameTaken)
}

func TestCatalogService_DeleteCategory_GuardedByProductRefs(t *testing.T) {
	f := newCatalogServiceFixture(t)
	ctx := context.Background()
	categoryID := uuid.New()

	f.productRepo.EXPECT().CountByCategory(ctx, categoryID).Return(int64(3), nil)

	err := f.svc.DeleteCategory(ctx, categoryID)

	assert.ErrorIs(t, err, domainerrors.ErrCategoryInUse)
}

func TestCatalogService_DeleteCategory_Empty(t *testing.T) {
	f := newCatalogServiceFixture(t)
	ctx := context.Background()
	categoryID := uuid.New()

	f.productRepo.EXPECT().CountByCategory(ctx, categoryID).Return(int64(0), nil)
	f.categoryRepo.EXPECT().Delete(ctx, categoryID).Return(nil)

	err := f.svc.DeleteCategory(ctx, categoryID)

	require.NoError(t, err)
}

func TestCatalogService_ListProducts_PassesFilter(t *testing.T) {
	f := newCatalogServiceFixture(t)
	ctx := context.Background()
	categoryID := uuid.New()
	faceShape := "oval"
	filter := repository.ProductFilter{CategoryID: &categoryID, FaceShape: &faceShape}

	f.productRepo.EXPECT().List(ctx, filter).
		Return([]*entity.Product{{ID: uuid.New(), Name: "Ray-Ban Aviator"}}, nil)

	products, err := f.svc.ListProducts(ctx, filter)

	require.NoError(t, err)
	assert.Len(t, products, 1)
}
