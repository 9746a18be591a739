package service

// QRCodeService renders QR code images.
type QRCodeService interface {
	// GenerateInvoiceQR renders a PNG encoding the invoice identifier. The
	// result is an informational fallback for invoices the provider returned
	// no image for; it is not a scannable payment instrument.
	GenerateInvoiceQR(invoiceID string) ([]byte, error)
}
