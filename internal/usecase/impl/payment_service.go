package impl

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	"optika/config"
	"optika/internal/domain/entity"
	domainerrors "optika/internal/domain/errors"
	"optika/internal/domain/repository"
	"optika/internal/domain/service"
	"optika/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	defaultPollInterval    = 5 * time.Second
	defaultPollMaxAttempts = 60
)

type paymentService struct {
	gateway       service.PaymentGateway
	qrcodeService service.QRCodeService
	orderUsecase  usecase.OrderUsecase
	orderRepo     repository.OrderRepository
	productRepo   repository.ProductRepository
	publisher     service.EventPublisher
	config        *config.Config
	logger        *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	Gateway       service.PaymentGateway
	QRCodeService service.QRCodeService
	OrderUsecase  usecase.OrderUsecase
	OrderRepo     repository.OrderRepository
	ProductRepo   repository.ProductRepository
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		gateway:       params.Gateway,
		qrcodeService: params.QRCodeService,
		orderUsecase:  params.OrderUsecase,
		orderRepo:     params.OrderRepo,
		productRepo:   params.ProductRepo,
		publisher:     params.Publisher,
		config:        params.Config,
		logger:        params.Logger,
	}
}

// CreateInvoice mints a provider invoice for the checkout total.
func (s *paymentService) CreateInvoice(ctx context.Context, input usecase.CheckoutInput) (*entity.Invoice, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("checkout has no items")
	}

	total, err := s.checkoutTotal(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	created, err := s.gateway.CreateInvoice(ctx, service.CreateInvoiceInput{
		Amount:          total,
		Description:     fmt.Sprintf("Optika захиалга — %s", input.Email),
		ReceiverCode:    input.Email,
		SenderInvoiceNo: uuid.NewString(),
	})
	if err != nil {
		return nil, domainerrors.ErrPaymentUpstream.WithDetails(err.Error())
	}

	invoice := &entity.Invoice{
		InvoiceID:     created.InvoiceID,
		QRText:        created.QRText,
		QRImage:       created.QRImage,
		ProviderImage: created.QRImage != "",
		ShortURL:      created.ShortURL,
	}

	// The provider occasionally omits the QR image. Render an informational
	// fallback locally so the storefront always has something to show.
	if invoice.QRImage == "" {
		png, qrErr := s.qrcodeService.GenerateInvoiceQR(invoice.InvoiceID)
		if qrErr != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "Fallback QR render failed",
				slog.String("invoiceId", invoice.InvoiceID),
				slog.String("error", qrErr.Error()),
			)
		} else {
			invoice.QRImage = base64.StdEncoding.EncodeToString(png)
		}
	}

	return invoice, nil
}

// CheckPayment returns the invoice's latest settlement record.
func (s *paymentService) CheckPayment(ctx context.Context, invoiceID string) (*service.PaymentRecord, error) {
	if invoiceID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invoice id is required")
	}

	record, err := s.gateway.CheckPayment(ctx, invoiceID)
	if err != nil {
		return nil, domainerrors.ErrPaymentUpstream.WithDetails(err.Error())
	}

	return record, nil
}

// HandleCallback processes a provider webhook notification. The status is
// re-checked against the provider rather than trusted from the payload.
func (s *paymentService) HandleCallback(ctx context.Context, payload usecase.CallbackPayload) error {
	if payload.QPayPaymentID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("qpay_payment_id is required")
	}
	if payload.InvoiceID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("invoice_id is required")
	}

	record, err := s.CheckPayment(ctx, payload.InvoiceID)
	if err != nil {
		return err
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "QPay callback received",
		slog.String("invoiceId", payload.InvoiceID),
		slog.String("paymentId", payload.QPayPaymentID),
		slog.String("status", string(record.Status)),
	)

	switch record.Status {
	case entity.PaymentStatusPaid:
		return s.onPaid(ctx, payload.InvoiceID)
	case entity.PaymentStatusFailed:
		return s.onFailed(ctx, payload.InvoiceID)
	case entity.PaymentStatusRefunded:
		return s.onRefunded(ctx, payload.InvoiceID)
	default:
		// NEW: nothing settled yet, nothing to do.
		return nil
	}
}

// WatchInvoice polls the invoice until it settles or the attempt budget runs
// out.
func (s *paymentService) WatchInvoice(ctx context.Context, watch usecase.InvoiceWatch) (*entity.Order, error) {
	interval := defaultPollInterval
	maxAttempts := defaultPollMaxAttempts
	if s.config.QPay != nil {
		if s.config.QPay.PollInterval > 0 {
			interval = s.config.QPay.PollInterval
		}
		if s.config.QPay.PollMaxAttempts > 0 {
			maxAttempts = s.config.QPay.PollMaxAttempts
		}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			s.logger.LogAttrs(ctx, slog.LevelInfo, "Invoice watch cancelled",
				slog.String("invoiceId", watch.InvoiceID),
				slog.Int("attempt", attempt),
			)

			return nil, ctx.Err()
		case <-ticker.C:
		}

		record, err := s.gateway.CheckPayment(ctx, watch.InvoiceID)
		if err != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "Invoice status check failed",
				slog.String("invoiceId", watch.InvoiceID),
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()),
			)

			continue
		}

		switch record.Status {
		case entity.PaymentStatusPaid:
			checkout := watch.Checkout
			checkout.Status = entity.OrderStatusPaid
			checkout.Paid = true

			return s.orderUsecase.CreateOrderForInvoice(ctx, watch.InvoiceID, checkout)

		case entity.PaymentStatusFailed:
			s.logger.LogAttrs(ctx, slog.LevelInfo, "Invoice settlement failed",
				slog.String("invoiceId", watch.InvoiceID),
			)

			return nil, domainerrors.ErrPaymentUpstream.WithDetails("invoice settlement failed")

		case entity.PaymentStatusRefunded:
			return nil, s.onRefunded(ctx, watch.InvoiceID)
		}
	}

	s.logger.LogAttrs(ctx, slog.LevelWarn, "Invoice watch exhausted",
		slog.String("invoiceId", watch.InvoiceID),
		slog.Int("maxAttempts", maxAttempts),
	)

	return nil, domainerrors.ErrInvoiceNotFound.WithDetails("invoice not settled within the watch window")
}

// onPaid marks the materialized order as paid. Materialization itself is
// owned by the invoice watch, which holds the checkout context; a callback
// arriving first simply finds no order yet.
func (s *paymentService) onPaid(ctx context.Context, invoiceID string) error {
	order, err := s.orderRepo.FindByInvoiceID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			s.logger.LogAttrs(ctx, slog.LevelInfo, "Paid invoice has no order yet",
				slog.String("invoiceId", invoiceID),
			)

			return nil
		}

		return domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	if order.Paid {
		return nil
	}

	_, err = s.orderUsecase.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusPaid)

	return err
}

func (s *paymentService) onFailed(ctx context.Context, invoiceID string) error {
	order, err := s.orderRepo.FindByInvoiceID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil
		}

		return domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	_, err = s.orderUsecase.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusFailed)

	return err
}

func (s *paymentService) onRefunded(ctx context.Context, invoiceID string) error {
	order, err := s.orderRepo.FindByInvoiceID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil
		}

		return domainerrors.ErrInternalError.WithDetails(err.Error())
	}

	event := &service.OrderEvent{
		EventType:  service.OrderEventRefunded,
		OrderID:    order.ID.String(),
		InvoiceID:  invoiceID,
		Status:     string(order.Status),
		Total:      order.Total.String(),
		Email:      order.Email,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "Refund event publish failed",
			slog.String("orderId", order.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

func (s *paymentService) checkoutTotal(ctx context.Context, items []usecase.CheckoutItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		if item.Quantity <= 0 {
			return decimal.Zero, domainerrors.ErrValidationFailed.WithDetails("quantity must be positive")
		}

		product, err := s.productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return decimal.Zero, domainerrors.ErrProductNotFound
			}

			return decimal.Zero, domainerrors.ErrInternalError.WithDetails(err.Error())
		}
		if product.Stock < item.Quantity {
			return decimal.Zero, domainerrors.ErrInsufficientStock
		}

		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return total, nil
}
