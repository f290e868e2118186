package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ShopModel mirrors the 'shops' table. Shop numbers are unique within a market.
type ShopModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MarketID            uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_shops_market_number"`
	SellerID            uuid.UUID `gorm:"type:uuid;not null;index"`
	Name                string    `gorm:"type:varchar(200);not null"`
	Description         *string   `gorm:"type:text"`
	ShopNumber          *string   `gorm:"type:varchar(50);uniqueIndex:idx_shops_market_number"`
	FloorLevel          string    `gorm:"type:varchar(20);not null;default:'Ground Floor'"`
	Latitude            float64   `gorm:"not null"`
	Longitude           float64   `gorm:"not null"`
	Altitude            *float64
	IndoorX             *float64
	IndoorY             *float64
	IndoorFloor         *int `gorm:"default:0"`
	EntranceLatitude    *float64
	EntranceLongitude   *float64
	IsAccessible        bool `gorm:"not null;default:true"`
	HasWheelchairAccess bool `gorm:"not null;default:false"`
	NavigationLandmarks datatypes.JSONSlice[string]
	IsActive            bool `gorm:"not null;default:true;index"`
	IsVerified          bool `gorm:"not null;default:false"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShopModel) TableName() string {
	return "shops"
}
