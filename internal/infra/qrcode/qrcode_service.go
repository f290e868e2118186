package qrcode

import (
	"fmt"
	"net/url"

	"marketnav/config"
	"marketnav/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize         = 256
	defaultDeepLinkBase = "marketnav://navigate"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	deepLinkBase         string
}

// NewQRCodeService creates a QR code service that encodes shop navigation deep links
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := defaultSize
	levelName := ""
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		levelName = cfg.QRCode.ErrorCorrectionLevel
	}

	deepLinkBase := defaultDeepLinkBase
	if cfg.Navigation != nil && cfg.Navigation.DeepLinkBaseURL != "" {
		deepLinkBase = cfg.Navigation.DeepLinkBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(levelName),
		deepLinkBase:         deepLinkBase,
	}
}

func recoveryLevel(name string) qrcode.RecoveryLevel {
	switch name {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// deepLink builds the link a scanning device opens to start navigation to the shop
func (s *qrcodeService) deepLink(marketID, shopID uuid.UUID) string {
	query := url.Values{}
	query.Set("market", marketID.String())
	query.Set("shop", shopID.String())

	return s.deepLinkBase + "?" + query.Encode()
}

// GenerateShopNavigationQR generates a PNG QR code holding the shop deep link
func (s *qrcodeService) GenerateShopNavigationQR(marketID, shopID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.deepLink(marketID, shopID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseShopNavigationQR extracts the shop ID from a scanned deep link
func (s *qrcodeService) ParseShopNavigationQR(qrData string) (uuid.UUID, error) {
	link, err := url.Parse(qrData)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse navigation link: %w", err)
	}

	shop := link.Query().Get("shop")
	if shop == "" {
		return uuid.Nil, fmt.Errorf("navigation link has no shop: %s", qrData)
	}

	shopID, err := uuid.Parse(shop)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse shop ID: %w", err)
	}

	return shopID, nil
}
