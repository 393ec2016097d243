package qrcode

import (
	"encoding/json"
	"fmt"

	"elegance/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// ReceiptData represents the QR code payload for an order receipt
type ReceiptData struct {
	OrderID    string `json:"order_id"`
	PaymentRef string `json:"payment_ref"`
	Type       string `json:"type"`
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

// GenerateReceiptQR generates a QR code for an order receipt
func (s *qrcodeService) GenerateReceiptQR(orderID, paymentRef string) ([]byte, error) {
	data := ReceiptData{
		OrderID:    orderID,
		PaymentRef: paymentRef,
		Type:       "receipt",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseReceiptQR parses QR code data and returns the order id and payment reference
func (s *qrcodeService) ParseReceiptQR(qrData string) (string, string, error) {
	var data ReceiptData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != "receipt" {
		return "", "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.OrderID == "" {
		return "", "", fmt.Errorf("QR code payload missing order id")
	}

	return data.OrderID, data.PaymentRef, nil
}
