package service

import (
	"context"
	"time"

	"marketnav/internal/domain/entity"
)

// DirectionsRequest is a point-to-point directions query.
type DirectionsRequest struct {
	StartLatitude  float64
	StartLongitude float64
	EndLatitude    float64
	EndLongitude   float64
	Mode           entity.NavigationMode
}

// ExternalRoute is a route computed by a third-party directions provider.
type ExternalRoute struct {
	Provider        string       `json:"provider"`
	DistanceMeters  float64      `json:"distance_meters"`
	DurationSeconds int          `json:"duration_seconds"`
	Coordinates     [][2]float64 `json:"coordinates"` // [lon, lat]
	EncodedPolyline string       `json:"encoded_polyline,omitempty"`
}

// RouteProvider computes directions through an external mapping API.
type RouteProvider interface {
	// Name returns the provider identifier, e.g. "google" or "mapbox".
	Name() string

	// Directions returns a route between the request endpoints.
	Directions(ctx context.Context, req DirectionsRequest) (*ExternalRoute, error)
}

// RouteCache stores external routes so repeated queries do not hit the provider.
type RouteCache interface {
	// Get returns the cached route for key. A miss returns nil without error.
	Get(ctx context.Context, key string) (*ExternalRoute, error)

	// Set stores a route for key for the given duration.
	Set(ctx context.Context, key string, route *ExternalRoute, ttl time.Duration) error
}
