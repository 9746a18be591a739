package usecase

import (
	"context"

	"optika/internal/domain/entity"
	"optika/internal/domain/service"
)

// CallbackPayload is the provider's webhook notification. QPayPaymentID is
// mandatory; a payload without it is rejected before any business logic runs.
type CallbackPayload struct {
	InvoiceID     string `json:"invoice_id"`
	QPayPaymentID string `json:"qpay_payment_id"`
}

// InvoiceWatch is one server-side polling session for an invoice. The
// checkout input is carried along so a settled invoice can be materialized
// into an order without further client involvement.
type InvoiceWatch struct {
	InvoiceID string
	Checkout  CheckoutInput
}

// PaymentUsecase defines the interface for payment flow use cases
type PaymentUsecase interface {
	// CreateInvoice mints a provider invoice for the checkout total. When the
	// provider supplies no QR image a locally rendered informational fallback
	// is attached.
	CreateInvoice(ctx context.Context, input CheckoutInput) (*entity.Invoice, error)

	// CheckPayment returns the invoice's latest settlement record. Reads are
	// idempotent.
	CheckPayment(ctx context.Context, invoiceID string) (*service.PaymentRecord, error)

	// HandleCallback processes a provider webhook: the invoice status is
	// re-checked and dispatched to the per-status handler. The HTTP layer
	// acknowledges the provider regardless of the outcome.
	HandleCallback(ctx context.Context, payload CallbackPayload) error

	// WatchInvoice polls the invoice until it settles or the attempt budget
	// runs out. A PAID result materializes the order exactly once; FAILED
	// marks the watch done; exhaustion leaves the invoice as-is.
	WatchInvoice(ctx context.Context, watch InvoiceWatch) (*entity.Order, error)
}
