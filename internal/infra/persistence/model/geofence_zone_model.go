package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GeofenceZoneModel mirrors the 'geofence_zones' table.
type GeofenceZoneModel struct {
	ID                  uuid.UUID                       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MarketID            uuid.UUID                       `gorm:"type:uuid;not null;index:idx_geofence_zones_market_created,priority:1"`
	Name                string                          `gorm:"type:varchar(100);not null"`
	ZoneType            string                          `gorm:"type:varchar(20);not null"`
	Description         *string                         `gorm:"type:text"`
	BoundaryCoordinates datatypes.JSONSlice[[2]float64] `gorm:"not null"`
	CenterLatitude      float64                         `gorm:"not null"`
	CenterLongitude     float64                         `gorm:"not null"`
	RadiusMeters        float64                         `gorm:"not null;default:10"`
	IsIndoor            bool                            `gorm:"not null;default:false"`
	FloorLevel          int                             `gorm:"not null;default:0"`
	IsRestricted        bool                            `gorm:"not null;default:false"`
	CreatedAt           time.Time                       `gorm:"index:idx_geofence_zones_market_created,priority:2"`
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (GeofenceZoneModel) TableName() string {
	return "geofence_zones"
}
