package service

import "ledger/internal/domain/entity"

// QRCodeService defines the interface for generating QR code images.
type QRCodeService interface {
	// GeneratePaymentQR encodes an invoice's payment details into a QR code PNG.
	GeneratePaymentQR(invoice *entity.Invoice) ([]byte, error)
}
