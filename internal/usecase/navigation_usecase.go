package usecase

import (
	"context"

	"marketnav/internal/domain/entity"

	"github.com/google/uuid"
)

// StartNavigationInput represents a request to start navigating.
// Exactly one of DestinationShopID or the destination coordinate pair must be set.
type StartNavigationInput struct {
	StartLatitude        float64               `json:"start_latitude"`
	StartLongitude       float64               `json:"start_longitude"`
	DestinationShopID    *uuid.UUID            `json:"destination_shop_id,omitempty"`
	DestinationLatitude  *float64              `json:"destination_latitude,omitempty"`
	DestinationLongitude *float64              `json:"destination_longitude,omitempty"`
	NavigationMode       entity.NavigationMode `json:"navigation_mode"`
	UseIndoorNavigation  bool                  `json:"use_indoor_navigation"`
}

// StartedNavigation is the result of starting a session
type StartedNavigation struct {
	Session *entity.NavigationSession
	Route   *Route
}

// UpdateNavigationStatusInput represents a progress or status update
type UpdateNavigationStatusInput struct {
	SessionID        uuid.UUID               `json:"session_id"`
	CurrentLatitude  float64                 `json:"current_latitude"`
	CurrentLongitude float64                 `json:"current_longitude"`
	CurrentStepIndex int                     `json:"current_step_index"`
	Status           entity.NavigationStatus `json:"status"`
}

// NavigationUsecase manages navigation sessions
type NavigationUsecase interface {
	// Start creates an active session, superseding any active session of the user
	Start(ctx context.Context, userID uuid.UUID, input *StartNavigationInput) (*StartedNavigation, error)

	// UpdateStatus records progress and status changes on a session owned by the user
	UpdateStatus(ctx context.Context, userID uuid.UUID, input *UpdateNavigationStatusInput) (*entity.NavigationSession, error)

	// ActiveSession returns the user's active session
	ActiveSession(ctx context.Context, userID uuid.UUID) (*entity.NavigationSession, error)

	// GetSession returns a session owned by the user
	GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*entity.NavigationSession, error)
}
