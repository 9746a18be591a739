// Package qrcode renders fallback QR images for payment invoices.
package qrcode

import (
	"optika/internal/domain/service"
	"optika/internal/errors"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateInvoiceQR renders a PNG encoding the invoice identifier. It backs
// invoices the provider returned no image for.
func (s *qrcodeService) GenerateInvoiceQR(invoiceID string) ([]byte, error) {
	if invoiceID == "" {
		return nil, errors.New("invoice id must not be empty")
	}

	qrCode, err := qrcode.New(invoiceID, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
