package qrcode

import (
	"testing"

	"marketnav/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, size int, level string) *qrcodeService {
	t.Helper()

	svc, ok := NewQRCodeService(&config.Config{
		QRCode:     &config.QRCodeConfig{Size: size, ErrorCorrectionLevel: level},
		Navigation: &config.NavigationConfig{DeepLinkBaseURL: "https://nav.example.com/go"},
	}).(*qrcodeService)
	require.True(t, ok)

	return svc
}

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "H", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, recoveryLevel(tt.level))
		})
	}
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	svc, ok := NewQRCodeService(&config.Config{}).(*qrcodeService)
	require.True(t, ok)

	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, defaultDeepLinkBase, svc.deepLinkBase)
}

func TestQRCodeService_GenerateShopNavigationQR(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := newTestService(t, size, "M")

		qrBytes, err := svc.GenerateShopNavigationQR(uuid.New(), uuid.New())
		require.NoError(t, err)
		require.Greater(t, len(qrBytes), 4)

		// PNG magic number
		assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
	}
}

func TestQRCodeService_DeepLinkRoundTrip(t *testing.T) {
	svc := newTestService(t, 256, "M")
	marketID := uuid.New()
	shopID := uuid.New()

	link := svc.deepLink(marketID, shopID)
	assert.Contains(t, link, "https://nav.example.com/go?")
	assert.Contains(t, link, "market="+marketID.String())

	parsed, err := svc.ParseShopNavigationQR(link)
	require.NoError(t, err)
	assert.Equal(t, shopID, parsed)
}

func TestQRCodeService_ParseShopNavigationQR_Invalid(t *testing.T) {
	svc := newTestService(t, 256, "M")

	tests := []struct {
		name    string
		data    string
		message string
	}{
		{"missing shop", "https://nav.example.com/go?market=1", "has no shop"},
		{"bad shop id", "https://nav.example.com/go?shop=not-a-uuid", "failed to parse shop ID"},
		{"bad link", "://broken", "failed to parse navigation link"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseShopNavigationQR(tt.data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
