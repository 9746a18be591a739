package entity

// PaymentStatus is a settlement status as reported by the payment provider.
type PaymentStatus string

const (
	// PaymentStatusNew is a transient acknowledgment state before settlement.
	PaymentStatusNew PaymentStatus = "NEW"
	// PaymentStatusPaid is terminal: the invoice settled successfully.
	PaymentStatusPaid PaymentStatus = "PAID"
	// PaymentStatusFailed is terminal: the settlement attempt failed.
	PaymentStatusFailed PaymentStatus = "FAILED"
	// PaymentStatusRefunded is terminal: a settled payment was returned.
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// IsTerminal reports whether no further provider-side state change is
// expected for the status.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusPaid || s == PaymentStatusFailed || s == PaymentStatusRefunded
}

// IsValid reports whether s is one of the provider's documented statuses.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusNew, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}

	return false
}

// Invoice is the provider's record of a pending charge, identified
// independently of any order.
type Invoice struct {
	InvoiceID string `json:"invoice_id"`
	// QRText is the scannable payment payload minted by the provider.
	QRText string `json:"qr_text"`
	// QRImage is a base64 PNG. When ProviderImage is false the image was
	// rendered locally from the invoice identifier as an informational
	// fallback and is not a scannable payment instrument.
	QRImage       string `json:"qr_image,omitempty"`
	ProviderImage bool   `json:"provider_image"`
	ShortURL      string `json:"short_url,omitempty"`
}
