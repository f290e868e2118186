package model

import (
	"time"

	"marketnav/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NavigationRouteModel mirrors the 'navigation_routes' table. Rows are never updated.
type NavigationRouteModel struct {
	ID                       uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MarketID                 uuid.UUID  `gorm:"type:uuid;not null;index"`
	StartShopID              *uuid.UUID `gorm:"type:uuid"`
	EndShopID                *uuid.UUID `gorm:"type:uuid;index"`
	StartLatitude            *float64
	StartLongitude           *float64
	EndLatitude              *float64
	EndLongitude             *float64
	RouteCoordinates         datatypes.JSONSlice[[2]float64] `gorm:"not null"`
	IndoorRouteCoordinates   datatypes.JSONSlice[entity.IndoorPoint]
	DistanceMeters           float64 `gorm:"not null"`
	EstimatedWalkTimeSeconds int     `gorm:"not null"`
	IsIndoorRoute            bool    `gorm:"not null;default:false"`
	IsAccessibleRoute        bool    `gorm:"not null;default:true"`
	TurnByTurnInstructions   datatypes.JSONSlice[entity.RouteInstruction]
	LandmarksOnRoute         datatypes.JSONSlice[string]
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// TableName explicitly sets the table name for GORM.
func (NavigationRouteModel) TableName() string {
	return "navigation_routes"
}
