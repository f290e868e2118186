package model

import (
	"time"

	"github.com/google/uuid"
)

// UserLocationModel mirrors the append-only 'user_locations' table.
type UserLocationModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index:idx_user_locations_user_time,priority:1"`
	MarketID       *uuid.UUID `gorm:"type:uuid;index"`
	Latitude       float64    `gorm:"not null"`
	Longitude      float64    `gorm:"not null"`
	Altitude       *float64
	Accuracy       *float64
	IndoorX        *float64
	IndoorY        *float64
	FloorLevel     *int
	IsIndoor       bool       `gorm:"not null;default:false"`
	CurrentShopID  *uuid.UUID `gorm:"type:uuid"`
	CurrentZoneID  *uuid.UUID `gorm:"type:uuid"`
	BatteryLevel   *int
	SignalStrength *int
	Timestamp      time.Time `gorm:"not null;index:idx_user_locations_user_time,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (UserLocationModel) TableName() string {
	return "user_locations"
}
