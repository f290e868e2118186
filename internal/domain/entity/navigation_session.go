package entity

import (
	"time"

	"github.com/google/uuid"
)

// NavigationStatus is the lifecycle state of a navigation session.
type NavigationStatus string

const (
	NavigationStatusActive    NavigationStatus = "active"
	NavigationStatusPaused    NavigationStatus = "paused"
	NavigationStatusCompleted NavigationStatus = "completed"
	NavigationStatusCancelled NavigationStatus = "cancelled"
)

// IsValid checks if the status is a known value.
func (s NavigationStatus) IsValid() bool {
	switch s {
	case NavigationStatusActive, NavigationStatusPaused, NavigationStatusCompleted, NavigationStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s NavigationStatus) IsTerminal() bool {
	return s == NavigationStatusCompleted || s == NavigationStatusCancelled
}

// CanTransitionTo reports whether a session in status s may move to next.
// Staying in the same non-terminal status is allowed so progress updates can be recorded.
func (s NavigationStatus) CanTransitionTo(next NavigationStatus) bool {
	if s.IsTerminal() || !next.IsValid() {
		return false
	}

	return true
}

// NavigationMode is the travel mode of a session.
type NavigationMode string

const (
	NavigationModeWalking       NavigationMode = "walking"
	NavigationModeDriving       NavigationMode = "driving"
	NavigationModeAccessibility NavigationMode = "accessibility"
)

// IsValid checks if the mode is a known value.
func (m NavigationMode) IsValid() bool {
	switch m {
	case NavigationModeWalking, NavigationModeDriving, NavigationModeAccessibility:
		return true
	default:
		return false
	}
}

// NavigationSession tracks one user's trip to a destination.
// CompletedAt is set exactly when Status is completed.
type NavigationSession struct {
	ID                            uuid.UUID        // The Global Unique Identifier (GUID) for the session.
	UserID                        uuid.UUID        // The navigating user.
	MarketID                      *uuid.UUID       // Market of the destination, if resolved.
	DestinationShopID             *uuid.UUID       // Destination shop for shop navigation.
	DestinationLatitude           *float64         // Destination point latitude.
	DestinationLongitude          *float64         // Destination point longitude.
	DestinationName               string           // Human readable destination.
	SelectedRouteID               *uuid.UUID       // Reused stored route, if any.
	RouteCoordinates              [][2]float64     // Route snapshot as [lon, lat].
	Status                        NavigationStatus // Lifecycle state.
	StartLatitude                 float64          // Latitude at session start.
	StartLongitude                float64          // Longitude at session start.
	CurrentStepIndex              int              // Index of the instruction being followed.
	DistanceRemainingMeters       *float64         // Straight-line distance to the destination at the last update.
	EstimatedTimeRemainingSeconds *int             // Walking time for the remaining distance.
	NavigationMode                NavigationMode   // Travel mode.
	UseIndoorNavigation           bool             // Whether indoor guidance was requested.
	StartedAt                     time.Time        // Timestamp of session start.
	CompletedAt                   *time.Time       // Timestamp of completion.
	Version                       int              // Optimistic concurrency counter, bumped on each write.
	UpdatedAt                     time.Time        // Timestamp of the last modification.
}

// HasDestinationPoint reports whether remaining distance can be computed for the session.
func (s *NavigationSession) HasDestinationPoint() bool {
	return s.DestinationLatitude != nil && s.DestinationLongitude != nil
}
