package qrcode

import (
	"fmt"
	"net/url"
	"strconv"

	"bezgo/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	upiScheme   = "upi"
	upiHost     = "pay"
	upiCurrency = "INR"
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

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// UPILink builds the upi://pay deep link for a payment request.
func UPILink(req service.UPIPaymentRequest) string {
	query := url.Values{}
	query.Set("pa", req.PayeeVPA)
	if req.PayeeName != "" {
		query.Set("pn", req.PayeeName)
	}
	query.Set("am", strconv.FormatFloat(req.Amount, 'f', 2, 64))
	query.Set("cu", upiCurrency)
	if req.Note != "" {
		query.Set("tn", req.Note)
	}

	link := url.URL{Scheme: upiScheme, Host: upiHost, RawQuery: query.Encode()}

	return link.String()
}

// GenerateUPIPaymentQR renders the payment link as a PNG QR code
func (s *qrcodeService) GenerateUPIPaymentQR(req service.UPIPaymentRequest) ([]byte, error) {
	if req.PayeeVPA == "" {
		return nil, fmt.Errorf("payee VPA is required")
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("invalid payment amount: %.2f", req.Amount)
	}

	qrCode, err := qrcode.New(UPILink(req), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseUPIPaymentQR parses a scanned upi://pay link
func (s *qrcodeService) ParseUPIPaymentQR(qrData string) (*service.UPIPaymentRequest, error) {
	link, err := url.Parse(qrData)
	if err != nil {
		return nil, fmt.Errorf("failed to parse QR code data: %w", err)
	}

	if link.Scheme != upiScheme || link.Host != upiHost {
		return nil, fmt.Errorf("invalid QR code type: %s://%s", link.Scheme, link.Host)
	}

	query := link.Query()
	if cu := query.Get("cu"); cu != "" && cu != upiCurrency {
		return nil, fmt.Errorf("unsupported currency: %s", cu)
	}

	payee := query.Get("pa")
	if payee == "" {
		return nil, fmt.Errorf("missing payee VPA")
	}

	amount, err := strconv.ParseFloat(query.Get("am"), 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount: %w", err)
	}

	return &service.UPIPaymentRequest{
		PayeeVPA:  payee,
		PayeeName: query.Get("pn"),
		Amount:    amount,
		Note:      query.Get("tn"),
	}, nil
}
