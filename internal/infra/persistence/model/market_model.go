package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MarketModel mirrors the 'markets' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type MarketModel struct {
	ID                       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name                     string    `gorm:"type:varchar(100);not null"`
	Description              *string   `gorm:"type:text"`
	Address                  string    `gorm:"type:text;not null"`
	City                     string    `gorm:"type:varchar(100);not null"`
	State                    string    `gorm:"type:varchar(100);not null"`
	Country                  string    `gorm:"type:varchar(100);not null;default:'Nigeria'"`
	Latitude                 float64   `gorm:"not null"`
	Longitude                float64   `gorm:"not null"`
	OpeningTime              *string   `gorm:"type:time"`
	ClosingTime              *string   `gorm:"type:time"`
	MapData                  datatypes.JSON
	BoundaryCoordinates      datatypes.JSONSlice[[2]float64] // [lon, lat] vertices
	IndoorMapEnabled         bool                            `gorm:"not null;default:false"`
	OutdoorNavigationEnabled bool                            `gorm:"not null;default:true"`
	CreatedAt                time.Time
	UpdatedAt                time.Time

	Shops         []ShopModel         `gorm:"foreignKey:MarketID"`
	GeofenceZones []GeofenceZoneModel `gorm:"foreignKey:MarketID"`
}

// TableName explicitly sets the table name for GORM.
func (MarketModel) TableName() string {
	return "markets"
}
