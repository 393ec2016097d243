package service

// QRCodeService defines the interface for receipt QR code generation and parsing.
type QRCodeService interface {
	// GenerateReceiptQR renders a PNG QR code for an order receipt.
	GenerateReceiptQR(orderID, paymentRef string) ([]byte, error)

	// ParseReceiptQR decodes receipt QR payload data back into its order id
	// and payment reference.
	ParseReceiptQR(qrData string) (orderID string, paymentRef string, err error)
}
