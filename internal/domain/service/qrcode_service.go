package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for generating shop navigation QR codes
type QRCodeService interface {
	// GenerateShopNavigationQR renders a PNG QR code that opens navigation to the shop
	GenerateShopNavigationQR(marketID, shopID uuid.UUID) ([]byte, error)

	// ParseShopNavigationQR extracts the shop ID from a scanned navigation link
	ParseShopNavigationQR(qrData string) (uuid.UUID, error)
}
