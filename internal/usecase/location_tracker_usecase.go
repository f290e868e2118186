package usecase

import (
	"context"

	"marketnav/internal/domain/entity"

	"github.com/google/uuid"
)

// ReportLocationInput represents a location sample sent by a device
type ReportLocationInput struct {
	Latitude         float64    `json:"latitude"`
	Longitude        float64    `json:"longitude"`
	MarketID         *uuid.UUID `json:"market_id,omitempty"`
	AutoDetectMarket *bool      `json:"auto_detect_market,omitempty"` // nil means enabled
	Altitude         *float64   `json:"altitude,omitempty"`
	AccuracyMeters   *float64   `json:"accuracy_meters,omitempty"`
	IndoorX          *float64   `json:"indoor_x,omitempty"`
	IndoorY          *float64   `json:"indoor_y,omitempty"`
	FloorLevel       *int       `json:"floor_level,omitempty"`
	BatteryLevel     *int       `json:"battery_level,omitempty"`
	SignalStrength   *int       `json:"signal_strength,omitempty"`
}

// LocationReport is a stored sample together with the names of the places it resolved to
type LocationReport struct {
	Location        *entity.UserLocation
	MarketName      string
	CurrentZoneName string
	CurrentShopName string
}

// LocationTrackerUsecase ingests location samples
type LocationTrackerUsecase interface {
	// ReportLocation resolves market, zone and shop for the sample and stores it
	ReportLocation(ctx context.Context, userID uuid.UUID, input *ReportLocationInput) (*LocationReport, error)

	// RecentLocations returns the user's latest samples, newest first
	RecentLocations(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.UserLocation, error)
}
