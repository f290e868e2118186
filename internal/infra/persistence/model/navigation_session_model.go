package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NavigationSessionModel mirrors the 'navigation_sessions' table.
// The partial unique index keeps at most one active session per user.
type NavigationSessionModel struct {
	ID                            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID                        uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_navigation_sessions_active_user,where:status = 'active'"`
	MarketID                      *uuid.UUID `gorm:"type:uuid"`
	DestinationShopID             *uuid.UUID `gorm:"type:uuid"`
	DestinationLatitude           *float64
	DestinationLongitude          *float64
	DestinationName               string     `gorm:"type:varchar(200)"`
	SelectedRouteID               *uuid.UUID `gorm:"type:uuid"`
	RouteCoordinates              datatypes.JSONSlice[[2]float64]
	Status                        string  `gorm:"type:varchar(20);not null;default:'active'"`
	StartLatitude                 float64 `gorm:"not null"`
	StartLongitude                float64 `gorm:"not null"`
	CurrentStepIndex              int     `gorm:"not null;default:0"`
	DistanceRemainingMeters       *float64
	EstimatedTimeRemainingSeconds *int
	NavigationMode                string    `gorm:"type:varchar(20);not null;default:'walking'"`
	UseIndoorNavigation           bool      `gorm:"not null;default:false"`
	StartedAt                     time.Time `gorm:"not null"`
	CompletedAt                   *time.Time
	Version                       int `gorm:"not null;default:1"`
	UpdatedAt                     time.Time
}

// TableName explicitly sets the table name for GORM.
func (NavigationSessionModel) TableName() string {
	return "navigation_sessions"
}
