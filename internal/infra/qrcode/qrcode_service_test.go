package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GeneratePaymentQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	invoice := &entity.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: "INV-1756700000000",
		Total:         125.5,
		Currency:      entity.CurrencyUSD,
	}

	data, err := svc.GeneratePaymentQR(invoice)

	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}

func TestQRCodeService_UnknownCorrectionLevelFallsBack(t *testing.T) {
	svc := NewQRCodeService(128, "Z")

	data, err := svc.GeneratePaymentQR(&entity.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: "INV-1756700000001",
		Total:         10,
		Currency:      entity.CurrencyUGX,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
