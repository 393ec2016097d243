package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, svc)
		})
	}
}

func TestGenerateReceiptQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	png, err := svc.GenerateReceiptQR("ord-001", "pay_seed4f8a2b1c9")
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	// PNG magic bytes.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestParseReceiptQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	payload, err := json.Marshal(ReceiptData{
		OrderID:    "ord-002",
		PaymentRef: "pay_seed7d3e5f2a8",
		Type:       "receipt",
	})
	require.NoError(t, err)

	orderID, paymentRef, err := svc.ParseReceiptQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, "ord-002", orderID)
	assert.Equal(t, "pay_seed7d3e5f2a8", paymentRef)
}

func TestParseReceiptQR_InvalidPayloads(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, _, err := svc.ParseReceiptQR("not json")
	assert.Error(t, err)

	payload, _ := json.Marshal(ReceiptData{OrderID: "ord-001", Type: "subscription"})
	_, _, err = svc.ParseReceiptQR(string(payload))
	assert.ErrorContains(t, err, "invalid QR code type")

	payload, _ = json.Marshal(ReceiptData{Type: "receipt"})
	_, _, err = svc.ParseReceiptQR(string(payload))
	assert.ErrorContains(t, err, "missing order id")
}
