package impl

import (
	"context"
	"testing"

	"optika/config"
	"optika/internal/domain/entity"
	domainerrors "optika/internal/domain/errors"
	"optika/internal/domain/repository"
	"optika/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func checkoutInputFixture(items ...usecase.CheckoutItem) usecase.CheckoutInput {
	return usecase.CheckoutInput{
		VisitorID: "visitor-1",
		Email:     "customer@example.mn",
		Name:      "Бат",
		Phone:     "+976 9911-2233",
		Address:   "СБД, 1-р хороо",
		Items:     items,
	}
}

func TestOrderService_Checkout_Success(t *testing.T) {
	f := newOrderServiceFixture(t, nil)
	ctx := context.Background()

	frameID := uuid.New()
	lensID := uuid.New()
	orderID := uuid.New()
	userID := uuid.New()

	frame := &entity.Product{ID: frameID, Name: "Wayfarer", Price: decimal.NewFromInt(100000), Stock: 5}
	lens := &entity.Product{ID: lensID, Name: "Blue light lens", Price: decimal.NewFromInt(25000), Stock: 10}

	f.productRepo.EXPECT().FindByID(ctx, frameID).Return(frame, nil)
	f.productRepo.EXPECT().FindByID(ctx, lensID).Return(lens, nil)

	f.userRepo.EXPECT().FindByEmail(ctx, "customer@example.mn").Return(nil, repository.ErrUserNotFound)
	f.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = userID
		}).
		Return(nil)

	var captured *entity.Order
	f.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*entity.Order)
			captured.ID = orderID
		}).
		Return(nil)
	f.productRepo.EXPECT().DecrementStock(ctx, frameID, 1).Return(nil)
	f.productRepo.EXPECT().DecrementStock(ctx, lensID, 2).Return(nil)
	f.cartRepo.EXPECT().ClearVisitor(ctx, "visitor-1").Return(nil)

	reloaded := &entity.Order{ID: orderID, Status: entity.OrderStatusPending, Total: decimal.NewFromInt(150000)}
	f.orderRepo.EXPECT().FindByID(ctx, orderID).Return(reloaded, nil)

	f.mailer.EXPECT().SendOrderConfirmation(ctx, reloaded).Return(nil)
	f.publisher.EXPECT().PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	input := checkoutInputFixture(
		usecase.CheckoutItem{ProductID: frameID, Quantity: 1},
		usecase.CheckoutItem{ProductID: lensID, Quantity: 2},
	)
	// Caller supplied garbage status is coerced, never rejected.
	input.Status = entity.OrderStatus("SOMETHING_ELSE")

	order, err := f.svc.Checkout(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)

	// 100000*1 + 25000*2, snapshotted from the read-time prices.
	require.NotNil(t, captured)
	assert.True(t, decimal.NewFromInt(150000).Equal(captured.Total),
		"total mismatch: %s", captured.Total)
	assert.Equal(t, entity.OrderStatusPending, captured.Status)
	assert.Equal(t, userID, captured.UserID)
	assert.Equal(t, "+97699112233", captured.Phone)
	require.Len(t, captured.Items, 2)
	assert.True(t, decimal.NewFromInt(100000).Equal(captured.Items[0].UnitPrice))
	assert.True(t, decimal.NewFromInt(25000).Equal(captured.Items[1].UnitPrice))
}

func TestOrderService_Checkout_EmptyOrder(t *testing.T) {
	f := newOrderServiceFixture(t, nil)

	_, err := f.svc.Checkout(context.Background(), checkoutInputFixture())

	require.Error(t, err)
	assert.ErrorContains(t, err, domainerrors.ErrValidationFailed.Message())
}

func TestOrderService_Checkout_ProductMissing(t *testing.T) {
	f := newOrderServiceFixture(t, nil)
	ctx := context.Background()
	missingID := uuid.New()

	f.productRepo.EXPECT().FindByID(ctx, missingID).Return(nil, repository.ErrProductNotFound)

	_, err := f.svc.Checkout(ctx, checkoutInputFixture(usecase.CheckoutItem{ProductID: missingID, Quantity: 1}))

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestOrderService_Checkout_InsufficientStockAtRead(t *testing.T) {
	f := newOrderServiceFixture(t, nil)
	ctx := context.Background()
	productID := uuid.New()

	f.productRepo.EXPECT().FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Price: decimal.NewFromInt(100), Stock: 1}, nil)

	_, err := f.svc.Checkout(ctx, checkoutInputFixture(usecase.CheckoutItem{ProductID: productID, Quantity: 2}))

	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestOrderService_Checkout_GuardedDecrementLosesRace(t *testing.T) {
	f := newOrderServiceFixture(t, nil)
	ctx := context.Background()
	productID := uuid.New()
	userID := uuid.New()

	// Stock looks fine at read time but a concurrent checkout takes the last
	// unit before the transaction decrements.
	f.productRepo.EXPECT().FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Price: decimal.NewFromInt(100), Stock: 1}, nil)
	f.userRepo.EXPECT().FindByEmail(ctx, "customer@example.mn").
		Return(&entity.User{ID: userID, Email: "customer@example.mn"}, nil)
	f.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	f.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	f.productRepo.EXPECT().DecrementStock(ctx, productID, 1).Return(repository.ErrInsufficientStock)

	_, err := f.svc.Checkout(ctx, checkoutInputFixture(usecase.CheckoutItem{ProductID: productID, Quantity: 1}))

	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestOrderService_Checkout_RefreshesExistingUser(t *testing.T) {
	f := newOrderServiceFixture(t, nil)
	ctx := context.Background()
	productID := uuid.New()
	orderID := uuid.New()
	userID := uuid.New()

	f.productRepo.EXPECT().FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Price: decimal.NewFromInt(100), Stock: 3}, nil)

	existing := &entity.User{ID: userID, Email: "customer@example.mn", Name: "Хуучин нэр"}
	f.userRepo.EXPECT().FindByEmail(ctx, "customer@example.mn").Return(existing, nil)
	f.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			assert.Equal(t, "Бат", user.Name)
			assert.Equal(t, "+97699112233", user.Phone)
		}).
		Return(nil)

	f.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Order).ID = orderID
		}).
		Return(nil)
	f.productRepo.EXPECT().DecrementStock(ctx, productID, 1).Return(nil)
	f.cartRepo.EXPECT().ClearVisitor(ctx, "visitor-1").Return(nil)
	f.orderRepo.EXPECT().FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusPending}, nil)
	f.mailer.EXPECT().SendOrderConfirmation(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	f.publisher.EXPECT().PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	_, err := f.svc.Checkout(ctx, checkoutInputFixture(usecase.CheckoutItem{ProductID: productID, Quantity: 1}))

	require.NoError(t, err)
}

func TestOrderService_Checkout_SideEffectFailuresDoNotFailOrder(t *testing.T) {
	f := newOrderServiceFixture(t, nil)
	ctx := context.Background()
	productID := uuid.New()
	orderID := uuid.New()

	f.productRepo.EXPECT().FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Price: decimal.NewFromInt(100), Stock: 3}, nil)
	f.userRepo.EXPECT().FindByEmail(ctx, "customer@example.mn").
		Return(&entity.User{ID: uuid.New()}, nil)
	f.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	f.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Order).ID = orderID
		}).
		Return(nil)
	f.productRepo.EXPECT().DecrementStock(ctx, productID, 1).Return(nil)
	f.cartRepo.EXPECT().ClearVisitor(ctx, "visitor-1").Return(nil)
	f.orderRepo.EXPECT().FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusPending}, nil)

	f.mailer.EXPECT().SendOrderConfirmation(ctx, mock.AnythingOfType("*entity.Order")).
		Return(assert.AnError)
	f.publisher.EXPECT().PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(assert.AnError)

	order, err := f.svc.Checkout(ctx, checkoutInputFixture(usecase.CheckoutItem{ProductID: productID, Quantity: 1}))

	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
}

func TestOrderService_Checkout_OutsideDeliveryZone(t *testing.T) {
	cfg := &config.Config{
		Delivery: &config.DeliveryConfig{
			// Ulaanbaatar city centre with a 10km radius.
			StoreLatitude:  47.9185,
			StoreLongitude: 106.9176,
			MaxRadiusKm:    10,
		},
	}
	f := newOrderServiceFixture(t, cfg)

	// Darkhan, roughly 220km away.
	lat, lng := 49.4867, 105.9228
	input := checkoutInputFixture(usecase.CheckoutItem{ProductID: uuid.New(), Quantity: 1})
	input.Latitude = &lat
	input.Longitude = &lng

	_, err := f.svc.Checkout(context.Background(), input)

	assert.ErrorIs(t, err, domainerrors.ErrOutsideDeliveryZone)
}

func TestOrderService_Checkout_InsideDeliveryZone(t *testing.T) {
	cfg := &config.Config{
		Delivery: &config.DeliveryConfig{
			StoreLatitude:  47.9185,
			StoreLongitude: 106.9176,
			MaxRadiusKm:    10,
		},
	}
	f := newOrderServiceFixture(t, cfg)
	ctx := context.Background()
	productID := uuid.New()
	orderID := uuid.New()

	f.productRepo.EXPECT().FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Price: decimal.NewFromInt(100), Stock: 3}, nil)
	f.userRepo.EXPECT().FindByEmail(ctx, "customer@example.mn").
		Return(&entity.User{ID: uuid.New()}, nil)
	f.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	f.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Order).ID = orderID
		}).
		Return(nil)
	f.productRepo.EXPECT().DecrementStock(ctx, productID, 1).Return(nil)
	f.cartRepo.EXPECT().ClearVisitor(ctx, "visitor-1").Return(nil)
	f.orderRepo.EXPECT().FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusPending}, nil)
	f.mailer.EXPECT().SendOrderConfirmation(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	f.publisher.EXPECT().PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	// A point inside the city, ~2km from the store.
	lat, lng := 47.9300, 106.9300
	input := checkoutInputFixture(usecase.CheckoutItem{ProductID: productID, Quantity: 1})
	input.Latitude = &lat
	input.Longitude = &lng

	_, err := f.svc.Checkout(ctx, input)

	require.NoError(t, err)
}

func TestOrderService_CreateOrderForInvoice_ReturnsExistingOrder(t *testing.T) {
	f := newOrderServiceFixture(t, nil)
	ctx := context.Background()

	existing := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusPaid}
	f.orderRepo.EXPECT().FindByInvoiceID(ctx, "inv-1").Return(existing, nil)

	order, err := f.svc.CreateOrderForInvoice(ctx, "inv-1", checkoutInputFixture(
		usecase.CheckoutItem{ProductID: uuid.New(), Quantity: 1},
	))

	require.NoError(t, err)
	assert.Same(t, existing, order)
}

func TestOrderService_CreateOrderForInvoice_MaterializesNewOrder(t *testing.T) {
	f := newOrderServiceFixture(t, nil)
	ctx := context.Background()
	productID := uuid.New()
	orderID := uuid.New()

	f.orderRepo.EXPECT().FindByInvoiceID(ctx, "inv-1").Return(nil, repository.ErrOrderNotFound)

	f.productRepo.EXPECT().FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Price: decimal.NewFromInt(100), Stock: 3}, nil)
	f.userRepo.EXPECT().FindByEmail(ctx, "customer@example.mn").
		Return(&entity.User{ID: uuid.New()}, nil)
	f.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	var captured *entity.Order
	f.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*entity.Order)
			captured.ID = orderID
		}).
		Return(nil)
	f.productRepo.EXPECT().DecrementStock(ctx, productID, 1).Return(nil)
	f.cartRepo.EXPECT().ClearVisitor(ctx, "visitor-1").Return(nil)
	f.orderRepo.EXPECT().FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusPaid}, nil)
	f.mailer.EXPECT().SendOrderConfirmation(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	f.publisher.EXPECT().PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	input := checkoutInputFixture(usecase.CheckoutItem{ProductID: productID, Quantity: 1})
	input.Status = entity.OrderStatusPaid
	input.Paid = true

	_, err := f.svc.CreateOrderForInvoice(ctx, "inv-1", input)

	require.NoError(t, err)
	require.NotNil(t, captured)
	require.NotNil(t, captured.QPayInvoiceID)
	assert.Equal(t, "inv-1", *captured.QPayInvoiceID)
	assert.True(t, captured.Paid)
}

func TestOrderService_UpdateOrderStatus_PermissiveByDefault(t *testing.T) {
	f := newOrderServiceFixture(t, nil)
	ctx := context.Background()
	orderID := uuid.New()

	// Straight from PENDING to DELIVERED: the default mode accepts any move.
	f.orderRepo.EXPECT().FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusPending}, nil).Once()
	f.orderRepo.EXPECT().UpdateStatus(ctx, orderID, entity.OrderStatusDelivered, false).Return(nil)
	f.orderRepo.EXPECT().FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusDelivered}, nil).Once()

	order, err := f.svc.UpdateOrderStatus(ctx, orderID, entity.OrderStatusDelivered)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusDelivered, order.Status)
}

func TestOrderService_UpdateOrderStatus_StrictRejectsSkippedStates(t *testing.T) {
	cfg := &config.Config{Orders: &config.OrdersConfig{StrictTransitions: true}}
	f := newOrderServiceFixture(t, cfg)
	ctx := context.Background()
	orderID := uuid.New()

	f.orderRepo.EXPECT().FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusPending}, nil)

	_, err := f.svc.UpdateOrderStatus(ctx, orderID, entity.OrderStatusDelivered)

	require.Error(t, err)
	assert.ErrorContains(t, err, domainerrors.ErrInvalidStatusTransition.Message())
}

func TestOrderService_UpdateOrderStatus_PaidPublishesEvent(t *testing.T) {
	f := newOrderServiceFixture(t, nil)
	ctx := context.Background()
	orderID := uuid.New()

	f.orderRepo.EXPECT().FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusPending, Total: decimal.NewFromInt(100)}, nil).Once()
	f.orderRepo.EXPECT().UpdateStatus(ctx, orderID, entity.OrderStatusPaid, true).Return(nil)
	f.publisher.EXPECT().PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)
	f.orderRepo.EXPECT().FindByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusPaid, Paid: true}, nil).Once()

	order, err := f.svc.UpdateOrderStatus(ctx, orderID, entity.OrderStatusPaid)

	require.NoError(t, err)
	assert.True(t, order.Paid)
}

func TestOrderService_UpdateOrderStatus_UnknownStatusRejected(t *testing.T) {
	f := newOrderServiceFixture(t, nil)

	_, err := f.svc.UpdateOrderStatus(context.Background(), uuid.New(), entity.OrderStatus("BOGUS"))

	require.Error(t, err)
	assert.ErrorContains(t, err, domainerrors.ErrValidationFailed.Message())
}

func TestOrderService_DeleteOrder(t *testing.T) {
	f := newOrderServiceFixture(t, nil)
	ctx := context.Background()
	orderID := uuid.New()

	f.orderRepo.EXPECT().Delete(ctx, orderID).Return(nil)

	require.NoError(t, f.svc.DeleteOrder(ctx, orderID))
}

func TestOrderService_DeleteOrder_NotFound(t *testing.T) {
	f := newOrderServiceFixture(t, nil)
	ctx := context.Background()
	orderID := uuid.New()

	f.orderRepo.EXPECT().Delete(ctx, orderID).Return(repository.ErrOrderNotFound)

	assert.ErrorIs(t, f.svc.DeleteOrder(ctx, orderID), domainerrors.ErrOrderNotFound)
}
