package handler

import (
	"time"

	"marketnav/internal/domain/entity"

	"github.com/google/uuid"
)

type coordinatesResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MarketResponse is the public view of a market
type MarketResponse struct {
	ID                       uuid.UUID    `json:"id"`
	Name                     string       `json:"name"`
	Description              string       `json:"description"`
	Address                  string       `json:"address"`
	City                     string       `json:"city"`
	State                    string       `json:"state"`
	Country                  string       `json:"country"`
	Latitude                 float64      `json:"latitude"`
	Longitude                float64      `json:"longitude"`
	OpeningTime              string       `json:"opening_time,omitempty"`
	ClosingTime              string       `json:"closing_time,omitempty"`
	IndoorMapEnabled         bool         `json:"indoor_map_enabled"`
	OutdoorNavigationEnabled bool         `json:"outdoor_navigation_enabled"`
	BoundaryCoordinates      [][2]float64 `json:"boundary_coordinates,omitempty"`
	CreatedAt                time.Time    `json:"created_at"`
	UpdatedAt                time.Time    `json:"updated_at"`
}

func newMarketResponse(m *entity.Market) *MarketResponse {
	if m == nil {
		return nil
	}

	resp := &MarketResponse{
		ID:                       m.ID,
		Name:                     m.Name,
		Description:              m.Description,
		Address:                  m.Address,
		City:                     m.City,
		State:                    m.State,
		Country:                  m.Country,
		Latitude:                 m.Latitude,
		Longitude:                m.Longitude,
		OpeningTime:              m.OpeningTime,
		ClosingTime:              m.ClosingTime,
		IndoorMapEnabled:         m.IndoorMapEnabled,
		OutdoorNavigationEnabled: m.OutdoorNavigationEnabled,
		CreatedAt:                m.CreatedAt,
		UpdatedAt:                m.UpdatedAt,
	}
	for _, p := range m.Boundary {
		resp.BoundaryCoordinates = append(resp.BoundaryCoordinates, [2]float64{p.Lon(), p.Lat()})
	}

	return resp
}

// ShopResponse is the public view of a shop; DistanceMeters is only set when
// a reference position was given
type ShopResponse struct {
	ID                  uuid.UUID `json:"id"`
	MarketID            uuid.UUID `json:"market_id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	ShopNumber          string    `json:"shop_number"`
	FloorLevel          string    `json:"floor_level"`
	Latitude            float64   `json:"latitude"`
	Longitude           float64   `json:"longitude"`
	Altitude            *float64  `json:"altitude,omitempty"`
	IndoorX             *float64  `json:"indoor_x,omitempty"`
	IndoorY             *float64  `json:"indoor_y,omitempty"`
	IndoorFloor         *int      `json:"indoor_floor,omitempty"`
	EntranceLatitude    *float64  `json:"entrance_latitude,omitempty"`
	EntranceLongitude   *float64  `json:"entrance_longitude,omitempty"`
	IsAccessible        bool      `json:"is_accessible"`
	HasWheelchairAccess bool      `json:"has_wheelchair_access"`
	NavigationLandmarks []string  `json:"navigation_landmarks"`
	DistanceMeters      *float64  `json:"distance_meters,omitempty"`
}

func newShopResponse(s *entity.Shop, distance *float64) *ShopResponse {
	landmarks := s.NavigationLandmarks
	if landmarks == nil {
		landmarks = []string{}
	}

	return &ShopResponse{
		ID:                  s.ID,
		MarketID:            s.MarketID,
		Name:                s.Name,
		Description:         s.Description,
		ShopNumber:          s.ShopNumber,
		FloorLevel:          s.FloorLevel,
		Latitude:            s.Latitude,
		Longitude:           s.Longitude,
		Altitude:            s.Altitude,
		IndoorX:             s.IndoorX,
		IndoorY:             s.IndoorY,
		IndoorFloor:         s.IndoorFloor,
		EntranceLatitude:    s.EntranceLatitude,
		EntranceLongitude:   s.EntranceLongitude,
		IsAccessible:        s.IsAccessible,
		HasWheelchairAccess: s.HasWheelchairAccess,
		NavigationLandmarks: landmarks,
		DistanceMeters:      distance,
	}
}

// ZoneResponse is the public view of a geofence zone
type ZoneResponse struct {
	ID                  uuid.UUID       `json:"id"`
	MarketID            uuid.UUID       `json:"market_id"`
	Name                string          `json:"name"`
	ZoneType            entity.ZoneType `json:"zone_type"`
	Description         string          `json:"description"`
	BoundaryCoordinates [][2]float64    `json:"boundary_coordinates,omitempty"`
	CenterLatitude      float64         `json:"center_latitude"`
	CenterLongitude     float64         `json:"center_longitude"`
	RadiusMeters        float64         `json:"radius_meters"`
	IsIndoor            bool            `json:"is_indoor"`
	FloorLevel          int             `json:"floor_level"`
	IsRestricted        bool            `json:"is_restricted"`
	CreatedAt           time.Time       `json:"created_at"`
}

func newZoneResponse(z *entity.GeofenceZone) *ZoneResponse {
	if z == nil {
		return nil
	}

	resp := &ZoneResponse{
		ID:              z.ID,
		MarketID:        z.MarketID,
		Name:            z.Name,
		ZoneType:        z.ZoneType,
		Description:     z.Description,
		CenterLatitude:  z.CenterLatitude,
		CenterLongitude: z.CenterLongitude,
		RadiusMeters:    z.RadiusMeters,
		IsIndoor:        z.IsIndoor,
		FloorLevel:      z.FloorLevel,
		IsRestricted:    z.IsRestricted,
		CreatedAt:       z.CreatedAt,
	}
	for _, p := range z.Boundary {
		resp.BoundaryCoordinates = append(resp.BoundaryCoordinates, [2]float64{p.Lon(), p.Lat()})
	}

	return resp
}

func newZoneResponses(zones []*entity.GeofenceZone) []*ZoneResponse {
	result := make([]*ZoneResponse, 0, len(zones))
	for _, z := range zones {
		result = append(result, newZoneResponse(z))
	}

	return result
}

// LocationResponse is a stored location sample with the names of what it resolved to
type LocationResponse struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	MarketID        *uuid.UUID `json:"market_id"`
	MarketName      string     `json:"market_name,omitempty"`
	Latitude        float64    `json:"latitude"`
	Longitude       float64    `json:"longitude"`
	Altitude        *float64   `json:"altitude,omitempty"`
	AccuracyMeters  *float64   `json:"accuracy_meters,omitempty"`
	IndoorX         *float64   `json:"indoor_x,omitempty"`
	IndoorY         *float64   `json:"indoor_y,omitempty"`
	FloorLevel      *int       `json:"floor_level,omitempty"`
	IsIndoor        bool       `json:"is_indoor"`
	CurrentShopID   *uuid.UUID `json:"current_shop_id"`
	CurrentShopName string     `json:"current_shop_name,omitempty"`
	CurrentZoneID   *uuid.UUID `json:"current_zone_id"`
	CurrentZoneName string     `json:"current_zone_name,omitempty"`
	BatteryLevel    *int       `json:"battery_level,omitempty"`
	SignalStrength  *int       `json:"signal_strength,omitempty"`
	Timestamp       time.Time  `json:"timestamp"`
}

func newLocationResponse(l *entity.UserLocation) *LocationResponse {
	return &LocationResponse{
		ID:             l.ID,
		UserID:         l.UserID,
		MarketID:       l.MarketID,
		Latitude:       l.Latitude,
		Longitude:      l.Longitude,
		Altitude:       l.Altitude,
		AccuracyMeters: l.AccuracyMeters,
		IndoorX:        l.IndoorX,
		IndoorY:        l.IndoorY,
		FloorLevel:     l.FloorLevel,
		IsIndoor:       l.IsIndoor,
		CurrentShopID:  l.CurrentShopID,
		CurrentZoneID:  l.CurrentZoneID,
		BatteryLevel:   l.BatteryLevel,
		SignalStrength: l.SignalStrength,
		Timestamp:      l.Timestamp,
	}
}

// SessionResponse is the public view of a navigation session
type SessionResponse struct {
	ID                            uuid.UUID               `json:"id"`
	UserID                        uuid.UUID               `json:"user_id"`
	MarketID                      *uuid.UUID              `json:"market_id"`
	DestinationShopID             *uuid.UUID              `json:"destination_shop_id"`
	DestinationLatitude           *float64                `json:"destination_latitude"`
	DestinationLongitude          *float64                `json:"destination_longitude"`
	DestinationName               string                  `json:"destination_name"`
	SelectedRouteID               *uuid.UUID              `json:"selected_route_id"`
	RouteCoordinates              [][2]float64            `json:"route_coordinates"`
	Status                        entity.NavigationStatus `json:"status"`
	StartLatitude                 float64                 `json:"start_latitude"`
	StartLongitude                float64                 `json:"start_longitude"`
	CurrentStepIndex              int                     `json:"current_step_index"`
	DistanceRemainingMeters       *float64                `json:"distance_remaining_meters"`
	EstimatedTimeRemainingSeconds *int                    `json:"estimated_time_remaining_seconds"`
	NavigationMode                entity.NavigationMode   `json:"navigation_mode"`
	UseIndoorNavigation           bool                    `json:"use_indoor_navigation"`
	StartedAt                     time.Time               `json:"started_at"`
	CompletedAt                   *time.Time              `json:"completed_at"`
}

func newSessionResponse(s *entity.NavigationSession) *SessionResponse {
	coords := s.RouteCoordinates
	if coords == nil {
		coords = [][2]float64{}
	}

	return &SessionResponse{
		ID:                            s.ID,
		UserID:                        s.UserID,
		MarketID:                      s.MarketID,
		DestinationShopID:             s.DestinationShopID,
		DestinationLatitude:           s.DestinationLatitude,
		DestinationLongitude:          s.DestinationLongitude,
		DestinationName:               s.DestinationName,
		SelectedRouteID:               s.SelectedRouteID,
		RouteCoordinates:              coords,
		Status:                        s.Status,
		StartLatitude:                 s.StartLatitude,
		StartLongitude:                s.StartLongitude,
		CurrentStepIndex:              s.CurrentStepIndex,
		DistanceRemainingMeters:       s.DistanceRemainingMeters,
		EstimatedTimeRemainingSeconds: s.EstimatedTimeRemainingSeconds,
		NavigationMode:                s.NavigationMode,
		UseIndoorNavigation:           s.UseIndoorNavigation,
		StartedAt:                     s.StartedAt,
		CompletedAt:                   s.CompletedAt,
	}
}
