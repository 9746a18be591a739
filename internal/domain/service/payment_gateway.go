// Package service declares the domain's outbound ports. Concrete
// implementations live under internal/infra.
package service

import (
	"context"

	"optika/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// CreateInvoiceInput describes the charge to mint with the payment provider.
type CreateInvoiceInput struct {
	Amount          decimal.Decimal
	Description     string
	ReceiverCode    string
	SenderInvoiceNo string
}

// CreatedInvoice is the provider's response to an invoice mint. QRImage is
// the provider-supplied base64 PNG and may be empty.
type CreatedInvoice struct {
	InvoiceID string
	QRText    string
	QRImage   string
	ShortURL  string
}

// PaymentRecord is the most recent settlement record for an invoice.
type PaymentRecord struct {
	PaymentID string
	Status    entity.PaymentStatus
	Amount    decimal.Decimal
}

// PaymentGateway bridges checkout to the external QR payment provider.
// Implementations authenticate lazily and refresh expired tokens
// transparently on every call.
type PaymentGateway interface {
	// Authenticate exchanges the configured credentials for a bearer token
	// and caches it with its expiry. Calling it is optional; CreateInvoice
	// and CheckPayment authenticate on demand.
	Authenticate(ctx context.Context) error

	// CreateInvoice mints an invoice with the provider.
	CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*CreatedInvoice, error)

	// CheckPayment queries the provider for the latest payment record of an
	// invoice. Reads are idempotent: two immediate calls with no provider
	// state change return the same status.
	CheckPayment(ctx context.Context, invoiceID string) (*PaymentRecord, error)
}
