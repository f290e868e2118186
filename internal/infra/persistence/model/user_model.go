package model

import (
	"github.com/google/uuid"
)

// UserModel is a read-only projection of the account service's 'users' table.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Username string    `gorm:"type:varchar(150);not null"`
	Role     string    `gorm:"type:varchar(10);not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
