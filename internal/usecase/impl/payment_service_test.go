package impl

import (
	"context"
	"encoding/base64"
	"log/slog"
	"testing"
	"time"

	"optika/config"
	"optika/internal/domain/entity"
	domainerrors "optika/internal/domain/errors"
	"optika/internal/domain/repository"
	"optika/internal/domain/service"
	"optika/internal/mocks"
	"optika/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentServiceFixture struct {
	gateway      *mocks.PaymentGateway
	qrcode       *mocks.QRCodeService
	orderUsecase *mocks.OrderUsecase
	orderRepo    *mocks.OrderRepository
	productRepo  *mocks.ProductRepository
	publisher    *mocks.EventPublisher
	svc          usecase.PaymentUsecase
}

func newPaymentServiceFixture(t *testing.T, cfg *config.Config) *paymentServiceFixture {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{
			QPay: &config.QPayConfig{
				PollInterval:    time.Millisecond,
				PollMaxAttempts: 3,
			},
		}
	}

	f := &paymentServiceFixture{
		gateway:      mocks.NewPaymentGateway(t),
		qrcode:       mocks.NewQRCodeService(t),
		orderUsecase: mocks.NewOrderUsecase(t),
		orderRepo:    mocks.NewOrderRepository(t),
		productRepo:  mocks.NewProductRepository(t),
		publisher:    mocks.NewEventPublisher(t),
	}

	f.svc = NewPaymentService(PaymentServiceParams{
		Gateway:       f.gateway,
		QRCodeService: f.qrcode,
		OrderUsecase:  f.orderUsecase,
		OrderRepo:     f.orderRepo,
		ProductRepo:   f.productRepo,
		Publisher:     f.publisher,
		Config:        cfg,
		Logger:        slog.New(slog.DiscardHandler),
	})

	return f
}

func TestPaymentService_CreateInvoice_ProviderImage(t *testing.T) {
	f := newPaymentServiceFixture(t, nil)
	ctx := context.Background()
	productID := uuid.New()

	f.productRepo.EXPECT().FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Price: decimal.NewFromInt(150000), Stock: 2}, nil)

	f.gateway.EXPECT().CreateInvoice(ctx, mock.AnythingOfType("service.CreateInvoiceInput")).
		Run(func(args mock.Arguments) {
			input := args.Get(1).(service.CreateInvoiceInput)
			assert.True(t, decimal.NewFromInt(150000).Equal(input.Amount))
		}).
		Return(&service.CreatedInvoice{
			InvoiceID: "inv-1",
			QRText:    "qr-payload",
			QRImage:   "cHJvdmlkZXItcG5n",
			ShortURL:  "https://s.qpay.mn/x",
		}, nil)

	invoice, err := f.svc.CreateInvoice(ctx, checkoutInputFixture(
		usecase.CheckoutItem{ProductID: productID, Quantity: 1},
	))

	require.NoError(t, err)
	assert.Equal(t, "inv-1", invoice.InvoiceID)
	assert.True(t, invoice.ProviderImage)
	assert.Equal(t, "cHJvdmlkZXItcG5n", invoice.QRImage)
}

func TestPaymentService_CreateInvoice_LocalFallbackQR(t *testing.T) {
	f := newPaymentServiceFixture(t, nil)
	ctx := context.Background()
	productID := uuid.New()

	f.productRepo.EXPECT().FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Price: decimal.NewFromInt(1000), Stock: 2}, nil)

	f.gateway.EXPECT().CreateInvoice(ctx, mock.AnythingOfType("service.CreateInvoiceInput")).
		Return(&service.CreatedInvoice{InvoiceID: "inv-1", QRText: "qr-payload"}, nil)
	f.qrcode.EXPECT().GenerateInvoiceQR("inv-1").Return([]byte("local-png"), nil)

	invoice, err := f.svc.CreateInvoice(ctx, checkoutInputFixture(
		usecase.CheckoutItem{ProductID: productID, Quantity: 1},
	))

	require.NoError(t, err)
	assert.False(t, invoice.ProviderImage, "locally rendered image must be flagged informational")
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("local-png")), invoice.QRImage)
}

func TestPaymentService_CreateInvoice_UpstreamError(t *testing.T) {
	f := newPaymentServiceFixture(t, nil)
	ctx := context.Background()
	productID := uuid.New()

	f.productRepo.EXPECT().FindByID(ctx, productID).
		Return(&entity.Product{ID: productID, Price: decimal.NewFromInt(1000), Stock: 2}, nil)
	f.gateway.EXPECT().CreateInvoice(ctx, mock.AnythingOfType("service.CreateInvoiceInput")).
		Return(nil, assert.AnError)

	_, err := f.svc.CreateInvoice(ctx, checkoutInputFixture(
		usecase.CheckoutItem{ProductID: productID, Quantity: 1},
	))

	require.Error(t, err)
	assert.ErrorContains(t, err, domainerrors.ErrPaymentUpstream.Message())
}

func TestPaymentService_CheckPayment_Idempotent(t *testing.T) {
	f := newPaymentServiceFixture(t, nil)
	ctx := context.Background()

	record := &service.PaymentRecord{PaymentID: "pay-1", Status: entity.PaymentStatusPaid}
	f.gateway.EXPECT().CheckPayment(ctx, "inv-1").Return(record, nil).Twice()

	first, err := f.svc.CheckPayment(ctx, "inv-1")
	require.NoError(t, err)
	second, err := f.svc.CheckPayment(ctx, "inv-1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPaymentService_HandleCallback_MissingPaymentID(t *testing.T) {
	f := newPaymentServiceFixture(t, nil)

	err := f.svc.HandleCallback(context.Background(), usecase.CallbackPayload{InvoiceID: "inv-1"})

	require.Error(t, err)
	assert.ErrorContains(t, err, domainerrors.ErrValidationFailed.Message())
}

func TestPaymentService_HandleCallback_PaidMarksOrder(t *testing.T) {
	f := newPaymentServiceFixture(t, nil)
	ctx := context.Background()
	orderID := uuid.New()

	f.gateway.EXPECT().CheckPayment(ctx, "inv-1").
		Return(&service.PaymentRecord{PaymentID: "pay-1", Status: entity.PaymentStatusPaid}, nil)
	f.orderRepo.EXPECT().FindByInvoiceID(ctx, "inv-1").
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusPending}, nil)
	f.orderUsecase.EXPECT().UpdateOrderStatus(ctx, orderID, entity.OrderStatusPaid).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusPaid, Paid: true}, nil)

	err := f.svc.HandleCallback(ctx, usecase.CallbackPayload{InvoiceID: "inv-1", QPayPaymentID: "pay-1"})

	require.NoError(t, err)
}

func TestPaymentService_HandleCallback_PaidWithoutOrderYet(t *testing.T) {
	f := newPaymentServiceFixture(t, nil)
	ctx := context.Background()

	f.gateway.EXPECT().CheckPayment(ctx, "inv-1").
		Return(&service.PaymentRecord{PaymentID: "pay-1", Status: entity.PaymentStatusPaid}, nil)
	f.orderRepo.EXPECT().FindByInvoiceID(ctx, "inv-1").
		Return(nil, repository.ErrOrderNotFound)

	// The watch owns materialization; a callback racing ahead of it is fine.
	err := f.svc.HandleCallback(ctx, usecase.CallbackPayload{InvoiceID: "inv-1", QPayPaymentID: "pay-1"})

	require.NoError(t, err)
}

func TestPaymentService_HandleCallback_FailedMarksOrder(t *testing.T) {
	f := newPaymentServiceFixture(t, nil)
	ctx := context.Background()
	orderID := uuid.New()

	f.gateway.EXPECT().CheckPayment(ctx, "inv-1").
		Return(&service.PaymentRecord{PaymentID: "pay-1", Status: entity.PaymentStatusFailed}, nil)
	f.orderRepo.EXPECT().FindByInvoiceID(ctx, "inv-1").
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusPending}, nil)
	f.orderUsecase.EXPECT().UpdateOrderStatus(ctx, orderID, entity.OrderStatusFailed).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusFailed}, nil)

	err := f.svc.HandleCallback(ctx, usecase.CallbackPayload{InvoiceID: "inv-1", QPayPaymentID: "pay-1"})

	require.NoError(t, err)
}

func TestPaymentService_HandleCallback_FailedWithoutOrder(t *testing.T) {
	f := newPaymentServiceFixture(t, nil)
	ctx := context.Background()

	f.gateway.EXPECT().CheckPayment(ctx, "inv-1").
		Return(&service.PaymentRecord{PaymentID: "pay-1", Status: entity.PaymentStatusFailed}, nil)
	f.orderRepo.EXPECT().FindByInvoiceID(ctx, "inv-1").
		Return(nil, repository.ErrOrderNotFound)

	err := f.svc.HandleCallback(ctx, usecase.CallbackPayload{InvoiceID: "inv-1", QPayPaymentID: "pay-1"})

	require.NoError(t, err)
}

func TestPaymentService_HandleCallback_RefundedPublishesEvent(t *testing.T) {
	f := newPaymentServiceFixture(t, nil)
	ctx := context.Background()
	orderID := uuid.New()

	f.gateway.EXPECT().CheckPayment(ctx, "inv-1").
		Return(&service.PaymentRecord{PaymentID: "pay-1", Status: entity.PaymentStatusRefunded}, nil)
	f.orderRepo.EXPECT().FindByInvoiceID(ctx, "inv-1").
		Return(&entity.Order{
			ID:     orderID,
			Status: entity.OrderStatusPaid,
			Total:  decimal.NewFromInt(150000),
			Email:  "customer@example.mn",
		}, nil)
	f.publisher.EXPECT().PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Run(func(args mock.Arguments) {
			event := args.Get(1).(*service.OrderEvent)
			assert.Equal(t, service.OrderEventRefunded, event.EventType)
			assert.Equal(t, orderID.String(), event.OrderID)
			assert.Equal(t, "inv-1", event.InvoiceID)
		}).
		Return(nil)

	err := f.svc.HandleCallback(ctx, usecase.CallbackPayload{InvoiceID: "inv-1", QPayPaymentID: "pay-1"})

	require.NoError(t, err)
}

func TestPaymentService_HandleCallback_RefundedWithoutOrder(t *testing.T) {
	f := newPaymentServiceFixture(t, nil)
	ctx := context.Background()

	f.gateway.EXPECT().CheckPayment(ctx, "inv-1").
		Return(&service.PaymentRecord{PaymentID: "pay-1", Status: entity.PaymentStatusRefunded}, nil)
	f.orderRepo.EXPECT().FindByInvoiceID(ctx, "inv-1").
		Return(nil, repository.ErrOrderNotFound)

	err := f.svc.HandleCallback(ctx, usecase.CallbackPayload{InvoiceID: "inv-1", QPayPaymentID: "pay-1"})

	require.NoError(t, err)
}

func TestPaymentService_HandleCallback_NewStatusIsNoop(t *testing.T) {
	f := newPaymentServiceFixture(t, nil)
	ctx := context.Background()

	f.gateway.EXPECT().CheckPayment(ctx, "inv-1").
		Return(&service.PaymentRecord{Status: entity.PaymentStatusNew}, nil)

	err := f.svc.HandleCallback(ctx, usecase.CallbackPayload{InvoiceID: "inv-1", QPayPaymentID: "pay-1"})

	require.NoError(t, err)
}

func TestPaymentService_WatchInvoice_PaidMaterializesOnce(t *testing.T) {
	f := newPaymentServiceFixture(t, nil)
	ctx := context.Background()
	orderID := uuid.New()

	// NEW on the first poll, PAID on the second.
	f.gateway.EXPECT().CheckPayment(ctx, "inv-1").
		Return(&service.PaymentRecord{Status: entity.PaymentStatusNew}, nil).Once()
	f.gateway.EXPECT().CheckPayment(ctx, "inv-1").
		Return(&service.PaymentRecord{PaymentID: "pay-1", Status: entity.PaymentStatusPaid}, nil).Once()

	f.orderUsecase.EXPECT().
		CreateOrderForInvoice(ctx, "inv-1", mock.AnythingOfType("usecase.CheckoutInput")).
		Run(func(args mock.Arguments) {
			input := args.Get(2).(usecase.CheckoutInput)
			assert.Equal(t, entity.OrderStatusPaid, input.Status)
			assert.True(t, input.Paid)
		}).
		Return(&entity.Order{ID: orderID, Status: entity.OrderStatusPaid}, nil).
		Once()

	order, err := f.svc.WatchInvoice(ctx, usecase.InvoiceWatch{
		InvoiceID: "inv-1",
		Checkout:  checkoutInputFixture(usecase.CheckoutItem{ProductID: uuid.New(), Quantity: 1}),
	})

	require.NoError(t, err)
	assert.Equal(t, orderID, order.ID)
}

func TestPaymentService_WatchInvoice_FailedStops(t *testing.T) {
	f := newPaymentServiceFixture(t, nil)
	ctx := context.Background()

	f.gateway.EXPECT().CheckPayment(ctx, "inv-1").
		Return(&service.PaymentRecord{Status: entity.PaymentStatusFailed}, nil).Once()

	_, err := f.svc.WatchInvoice(ctx, usecase.InvoiceWatch{InvoiceID: "inv-1"})

	require.Error(t, err)
	assert.ErrorContains(t, err, domainerrors.ErrPaymentUpstream.Message())
}

func TestPaymentService_WatchInvoice_Exhaustion(t *testing.T) {
	f := newPaymentServiceFixture(t, nil)
	ctx := context.Background()

	// Never settles within the three-attempt budget.
	f.gateway.EXPECT().CheckPayment(ctx, "inv-1").
		Return(&service.PaymentRecord{Status: entity.PaymentStatusNew}, nil).Times(3)

	_, err := f.svc.WatchInvoice(ctx, usecase.InvoiceWatch{InvoiceID: "inv-1"})

	require.Error(t, err)
	assert.ErrorContains(t, err, domainerrors.ErrInvoiceNotFound.Message())
}

func TestPaymentService_WatchInvoice_ContextCancelled(t *testing.T) {
	cfg := &config.Config{
		QPay: &config.QPayConfig{
			PollInterval:    time.Hour, // never ticks before cancellation
			PollMaxAttempts: 3,
		},
	}
	f := newPaymentServiceFixture(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.svc.WatchInvoice(ctx, usecase.InvoiceWatch{InvoiceID: "inv-1"})

	assert.ErrorIs(t, err, context.Canceled)
}
