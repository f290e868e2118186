package entity

import (
	"time"

	"github.com/google/uuid"
)

// IndoorPoint is a position on a market's indoor map.
type IndoorPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Floor int     `json:"floor"`
}

// RouteInstruction is one step of a route.
// Outdoor steps carry Bearing and Coordinates ([lon, lat]); indoor steps carry IndoorCoordinates.
type RouteInstruction struct {
	Step              int          `json:"step"`
	Instruction       string       `json:"instruction"`
	DistanceMeters    float64      `json:"distance_meters"`
	Bearing           *float64     `json:"bearing,omitempty"`
	Coordinates       []float64    `json:"coordinates,omitempty"`
	IndoorCoordinates *IndoorPoint `json:"indoor_coordinates,omitempty"`
}

// NavigationRoute is a stored path between two places. Routes are immutable once created.
// A route with an end shop and no start coordinates is a generic route that can be reused from any start.
type NavigationRoute struct {
	ID                       uuid.UUID          // The Global Unique Identifier (GUID) for the route.
	MarketID                 uuid.UUID          // The market the route belongs to.
	StartShopID              *uuid.UUID         // Optional start shop.
	EndShopID                *uuid.UUID         // Optional destination shop.
	StartLatitude            *float64           // Optional start latitude.
	StartLongitude           *float64           // Optional start longitude.
	EndLatitude              *float64           // Optional end latitude.
	EndLongitude             *float64           // Optional end longitude.
	Coordinates              [][2]float64       // Path points as [lon, lat].
	IndoorCoordinates        []IndoorPoint      // Indoor path points, if any.
	DistanceMeters           float64            // Stored route length.
	EstimatedWalkTimeSeconds int                // Stored walking time.
	IsIndoorRoute            bool               // Whether the route runs indoors.
	IsAccessibleRoute        bool               // Whether the route is accessible.
	Instructions             []RouteInstruction // Turn instructions.
	Landmarks                []string           // Landmarks passed along the route.
	CreatedAt                time.Time          // Timestamp of when this route was created.
}

// IsGeneric reports whether the route can be reused from an arbitrary start point.
func (r *NavigationRoute) IsGeneric() bool {
	return r.EndShopID != nil && r.StartLatitude == nil && r.StartLongitude == nil
}
