// Package mocks provides hand-maintained testify mocks for the domain's
// repository and service interfaces.
package mocks

import (
	"context"

	"optika/internal/domain/entity"
	"optika/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockConstructorTestingT interface {
	mock.TestingT
	Cleanup(func())
}

// ProductRepository is a mock implementation of repository.ProductRepository.
type ProductRepository struct {
	mock.Mock
}

// NewProductRepository creates a new mock and registers expectation checks.
func NewProductRepository(t mockConstructorTestingT) *ProductRepository {
	m := &ProductRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Product)
	}

	return r0, ret.Error(1)
}

func (_m *ProductRepository) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	ret := _m.Called(ctx, filter)

	var r0 []*entity.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Product)
	}

	return r0, ret.Error(1)
}

func (_m *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return _m.Called(ctx, product).Error(0)
}

func (_m *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return _m.Called(ctx, product).Error(0)
}

func (_m *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return _m.Called(ctx, id).Error(0)
}

func (_m *ProductRepository) DecrementStock(ctx context.Context, id uuid.UUID, qty int) error {
	return _m.Called(ctx, id, qty).Error(0)
}

func (_m *ProductRepository) CountByCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	ret := _m.Called(ctx, categoryID)

	return ret.Get(0).(int64), ret.Error(1)
}

// EXPECT returns a helper for setting expectations.
func (_m *ProductRepository) EXPECT() *ProductRepositoryExpecter {
	return &ProductRepositoryExpecter{mock: &_m.Mock}
}

type ProductRepositoryExpecter struct {
	mock *mock.Mock
}

func (_e *ProductRepositoryExpecter) FindByID(ctx, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_e *ProductRepositoryExpecter) List(ctx, filter any) *mock.Call {
	return _e.mock.On("List", ctx, filter)
}

func (_e *ProductRepositoryExpecter) Create(ctx, product any) *mock.Call {
	return _e.mock.On("Create", ctx, product)
}

func (_e *ProductRepositoryExpecter) Update(ctx, product any) *mock.Call {
	return _e.mock.On("Update", ctx, product)
}

func (_e *ProductRepositoryExpecter) Delete(ctx, id any) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

func (_e *ProductRepositoryExpecter) DecrementStock(ctx, id, qty any) *mock.Call {
	return _e.mock.On("DecrementStock", ctx, id, qty)
}

func (_e *ProductRepositoryExpecter) CountByCategory(ctx, categoryID any) *mock.Call {
	return _e.mock.On("CountByCategory", ctx, categoryID)
}

// CategoryRepository is a mock implementation of repository.CategoryRepository.
type CategoryRepository struct {
	mock.Mock
}

// NewCategoryRepository creates a new mock and registers expectation checks.
func NewCategoryRepository(t mockConstructorTestingT) *CategoryRepository {
	m := &CategoryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *CategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Category)
	}

	return r0, ret.Error(1)
}

func (_m *CategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	ret := _m.Called(ctx)

	var r0 []*entity.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Category)
	}

	return r0, ret.Error(1)
}

func (_m *CategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	return _m.Called(ctx, category).Error(0)
}

func (_m *CategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	return _m.Called(ctx, category).Error(0)
}

func (_m *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return _m.Called(ctx, id).Error(0)
}

// EXPECT returns a helper for setting expectations.
func (_m *CategoryRepository) EXPECT() *CategoryRepositoryExpecter {
	return &CategoryRepositoryExpecter{mock: &_m.Mock}
}

type CategoryRepositoryExpecter struct {
	mock *mock.Mock
}

func (_e *CategoryRepositoryExpecter) FindByID(ctx, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_e *CategoryRepositoryExpecter) List(ctx any) *mock.Call {
	return _e.mock.On("List", ctx)
}

func (_e *CategoryRepositoryExpecter) Create(ctx, category any) *mock.Call {
	return _e.mock.On("Create", ctx, category)
}

func (_e *CategoryRepositoryExpecter) Update(ctx, category any) *mock.Call {
	return _e.mock.On("Update", ctx, category)
}

func (_e *CategoryRepositoryExpecter) Delete(ctx, id any) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

// CartRepository is a mock implementation of repository.CartRepository.
type CartRepository struct {
	mock.Mock
}

// NewCartRepository creates a new mock and registers expectation checks.
func NewCartRepository(t mockConstructorTestingT) *CartRepository {
	m := &CartRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *CartRepository) FindLine(ctx context.Context, visitorID string, productID uuid.UUID) (*entity.CartItem, error) {
	ret := _m.Called(ctx, visitorID, productID)

	var r0 *entity.CartItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.CartItem)
	}

	return r0, ret.Error(1)
}

func (_m *CartRepository) ListByVisitor(ctx context.Context, visitorID string) ([]*entity.CartItem, error) {
	ret := _m.Called(ctx, visitorID)

	var r0 []*entity.CartItem
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.CartItem)
	}

	return r0, ret.Error(1)
}

func (_m *CartRepository) Save(ctx context.Context, item *entity.CartItem) error {
	return _m.Called(ctx, item).Error(0)
}

func (_m *CartRepository) DeleteLine(ctx context.Context, visitorID string, productID uuid.UUID) error {
	return _m.Called(ctx, visitorID, productID).Error(0)
}

func (_m *CartRepository) ClearVisitor(ctx context.Context, visitorID string) error {
	return _m.Called(ctx, visitorID).Error(0)
}

// EXPECT returns a helper for setting expectations.
func (_m *CartRepository) EXPECT() *CartRepositoryExpecter {
	return &CartRepositoryExpecter{mock: &_m.Mock}
}

type CartRepositoryExpecter struct {
	mock *mock.Mock
}

func (_e *CartRepositoryExpecter) FindLine(ctx, visitorID, productID any) *mock.Call {
	return _e.mock.On("FindLine", ctx, visitorID, productID)
}

func (_e *CartRepositoryExpecter) ListByVisitor(ctx, visitorID any) *mock.Call {
	return _e.mock.On("ListByVisitor", ctx, visitorID)
}

func (_e *CartRepositoryExpecter) Save(ctx, item any) *mock.Call {
	return _e.mock.On("Save", ctx, item)
}

func (_e *CartRepositoryExpecter) DeleteLine(ctx, visitorID, productID any) *mock.Call {
	return _e.mock.On("DeleteLine", ctx, visitorID, productID)
}

func (_e *CartRepositoryExpecter) ClearVisitor(ctx, visitorID any) *mock.Call {
	return _e.mock.On("ClearVisitor", ctx, visitorID)
}

// OrderRepository is a mock implementation of repository.OrderRepository.
type OrderRepository struct {
	mock.Mock
}

// NewOrderRepository creates a new mock and registers expectation checks.
func NewOrderRepository(t mockConstructorTestingT) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *OrderRepository) Create(ctx context.Context, order *entity.Order) error {
	return _m.Called(ctx, order).Error(0)
}

func (_m *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Order)
	}

	return r0, ret.Error(1)
}

func (_m *OrderRepository) FindByInvoiceID(ctx context.Context, invoiceID string) (*entity.Order, error) {
	ret := _m.Called(ctx, invoiceID)

	var r0 *entity.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Order)
	}

	return r0, ret.Error(1)
}

func (_m *OrderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	ret := _m.Called(ctx)

	var r0 []*entity.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Order)
	}

	return r0, ret.Error(1)
}

func (_m *OrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus, paid bool) error {
	return _m.Called(ctx, id, status, paid).Error(0)
}

func (_m *OrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return _m.Called(ctx, id).Error(0)
}

// EXPECT returns a helper for setting expectations.
func (_m *OrderRepository) EXPECT() *OrderRepositoryExpecter {
	return &OrderRepositoryExpecter{mock: &_m.Mock}
}

type OrderRepositoryExpecter struct {
	mock *mock.Mock
}

func (_e *OrderRepositoryExpecter) Create(ctx, order any) *mock.Call {
	return _e.mock.On("Create", ctx, order)
}

func (_e *OrderRepositoryExpecter) FindByID(ctx, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_e *OrderRepositoryExpecter) FindByInvoiceID(ctx, invoiceID any) *mock.Call {
	return _e.mock.On("FindByInvoiceID", ctx, invoiceID)
}

func (_e *OrderRepositoryExpecter) List(ctx any) *mock.Call {
	return _e.mock.On("List", ctx)
}

func (_e *OrderRepositoryExpecter) UpdateStatus(ctx, id, status, paid any) *mock.Call {
	return _e.mock.On("UpdateStatus", ctx, id, status, paid)
}

func (_e *OrderRepositoryExpecter) Delete(ctx, id any) *mock.Call {
	return _e.mock.On("Delete", ctx, id)
}

// UserRepository is a mock implementation of repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

// NewUserRepository creates a new mock and registers expectation checks.
func NewUserRepository(t mockConstructorTestingT) *UserRepository {
	m := &UserRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	return r0, ret.Error(1)
}

func (_m *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	ret := _m.Called(ctx, email)

	var r0 *entity.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.User)
	}

	return r0, ret.Error(1)
}

func (_m *UserRepository) Create(ctx context.Context, user *entity.User) error {
	return _m.Called(ctx, user).Error(0)
}

func (_m *UserRepository) Update(ctx context.Context, user *entity.User) error {
	return _m.Called(ctx, user).Error(0)
}

// EXPECT returns a helper for setting expectations.
func (_m *UserRepository) EXPECT() *UserRepositoryExpecter {
	return &UserRepositoryExpecter{mock: &_m.Mock}
}

type UserRepositoryExpecter struct {
	mock *mock.Mock
}

func (_e *UserRepositoryExpecter) FindByID(ctx, id any) *mock.Call {
	return _e.mock.On("FindByID", ctx, id)
}

func (_e *UserRepositoryExpecter) FindByEmail(ctx, email any) *mock.Call {
	return _e.mock.On("FindByEmail", ctx, email)
}

func (_e *UserRepositoryExpecter) Create(ctx, user any) *mock.Call {
	return _e.mock.On("Create", ctx, user)
}

func (_e *UserRepositoryExpecter) Update(ctx, user any) *mock.Call {
	return _e.mock.On("Update", ctx, user)
}

// RepositoryFactory is a stub factory handing out a fixed set of mocks.
type RepositoryFactory struct {
	ProductRepo  *ProductRepository
	OrderRepo    *OrderRepository
	CartRepo     *CartRepository
	UserRepo     *UserRepository
}

func (f *RepositoryFactory) NewProductRepository() repository.ProductRepository {
	return f.ProductRepo
}

func (f *RepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return f.OrderRepo
}

func (f *RepositoryFactory) NewCartRepository() repository.CartRepository {
	return f.CartRepo
}

func (f *RepositoryFactory) NewUserRepository() repository.UserRepository {
	return f.UserRepo
}

// TransactionManager runs the callback immediately against the stub factory,
// standing in for a real database transaction.
type TransactionManager struct {
	Factory *RepositoryFactory
}

func (tm *TransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(tm.Factory)
}
