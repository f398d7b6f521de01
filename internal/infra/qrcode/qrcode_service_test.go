package qrcode

import (
	"testing"

	"bezgo/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentRequest() service.UPIPaymentRequest {
	return service.UPIPaymentRequest{
		PayeeVPA:  "bezgofresh@upi",
		PayeeName: "bezgo fresh",
		Amount:    249.5,
		Note:      "Order BZG123456",
	}
}

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
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestUPILink(t *testing.T) {
	link := UPILink(paymentRequest())

	assert.Equal(t, "upi://pay?am=249.50&cu=INR&pa=bezgofresh%40upi&pn=bezgo+fresh&tn=Order+BZG123456", link)
}

func TestQRCodeService_GenerateUPIPaymentQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateUPIPaymentQR(paymentRequest())
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateUPIPaymentQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := NewQRCodeService(size, "M")

		qrBytes, err := service.GenerateUPIPaymentQR(paymentRequest())
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestQRCodeService_GenerateUPIPaymentQR_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M")

	noPayee := paymentRequest()
	noPayee.PayeeVPA = ""
	_, err := service.GenerateUPIPaymentQR(noPayee)
	assert.Error(t, err)

	zero := paymentRequest()
	zero.Amount = 0
	_, err = service.GenerateUPIPaymentQR(zero)
	assert.Error(t, err)
}

func TestQRCodeService_ParseUPIPaymentQR_RoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M")
	want := paymentRequest()

	got, err := service.ParseUPIPaymentQR(UPILink(want))
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestQRCodeService_ParseUPIPaymentQR_Errors(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name    string
		data    string
		wantMsg string
	}{
		{"not a upi link", "https://example.com/pay?pa=x@upi&am=1", "invalid QR code type"},
		{"missing payee", "upi://pay?am=10.00&cu=INR", "missing payee VPA"},
		{"bad amount", "upi://pay?pa=x@upi&am=ten", "failed to parse amount"},
		{"foreign currency", "upi://pay?pa=x@upi&am=1&cu=USD", "unsupported currency"},
		{"unparseable", "upi://pay?pa=x@upi\n", "failed to parse QR code data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParseUPIPaymentQR(tt.data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
