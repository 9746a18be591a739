package mocks

import (
	"context"

	"optika/internal/domain/entity"
	"optika/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// OrderUsecase is a mock implementation of usecase.OrderUsecase.
type OrderUsecase struct {
	mock.Mock
}

// NewOrderUsecase creates a new mock and registers expectation checks.
func NewOrderUsecase(t mockConstructorTestingT) *OrderUsecase {
	m := &OrderUsecase{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (_m *OrderUsecase) Checkout(ctx context.Context, input usecase.CheckoutInput) (*entity.Order, error) {
	ret := _m.Called(ctx, input)

	var r0 *entity.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Order)
	}

	return r0, ret.Error(1)
}

func (_m *OrderUsecase) CreateOrderForInvoice(ctx context.Context, invoiceID string, input usecase.CheckoutInput) (*entity.Order, error) {
	ret := _m.Called(ctx, invoiceID, input)

	var r0 *entity.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Order)
	}

	return r0, ret.Error(1)
}

func (_m *OrderUsecase) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Order)
	}

	return r0, ret.Error(1)
}

func (_m *OrderUsecase) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	ret := _m.Called(ctx)

	var r0 []*entity.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Order)
	}

	return r0, ret.Error(1)
}

func (_m *OrderUsecase) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	ret := _m.Called(ctx, id, status)

	var r0 *entity.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Order)
	}

	return r0, ret.Error(1)
}

func (_m *OrderUsecase) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	return _m.Called(ctx, id).Error(0)
}

// EXPECT returns a helper for setting expectations.
func (_m *OrderUsecase) EXPECT() *OrderUsecaseExpecter {
	return &OrderUsecaseExpecter{mock: &_m.Mock}
}

type OrderUsecaseExpecter struct {
	mock *mock.Mock
}

func (_e *OrderUsecaseExpecter) Checkout(ctx, input any) *mock.Call {
	return _e.mock.On("Checkout", ctx, input)
}

func (_e *OrderUsecaseExpecter) CreateOrderForInvoice(ctx, invoiceID, input any) *mock.Call {
	return _e.mock.On("CreateOrderForInvoice", ctx, invoiceID, input)
}

func (_e *OrderUsecaseExpecter) GetOrder(ctx, id any) *mock.Call {
	return _e.mock.On("GetOrder", ctx, id)
}

func (_e *OrderUsecaseExpecter) ListOrders(ctx any) *mock.Call {
	return _e.mock.On("ListOrders", ctx)
}

func (_e *OrderUsecaseExpecter) UpdateOrderStatus(ctx, id, status any) *mock.Call {
	return _e.mock.On("UpdateOrderStatus", ctx, id, status)
}

func (_e *OrderUsecaseExpecter) DeleteOrder(ctx, id any) *mock.Call {
	return _e.mock.On("DeleteOrder", ctx, id)
}
