package service

// UPIPaymentRequest is the content of a UPI payment QR
type UPIPaymentRequest struct {
	PayeeVPA  string
	PayeeName string
	Amount    float64
	Note      string // Transaction note, usually the lifecycle or order reference
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateUPIPaymentQR renders a upi://pay link as a PNG QR code
	GenerateUPIPaymentQR(req UPIPaymentRequest) ([]byte, error)

	// ParseUPIPaymentQR parses a upi://pay link back into a payment request
	ParseUPIPaymentQR(qrData string) (*UPIPaymentRequest, error)
}
