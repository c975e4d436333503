package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are generated by the application.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email          string    `gorm:"type:varchar(250);uniqueIndex;not null"`
	HashedPassword string    `gorm:"type:varchar(250);not null"`
	SessionID      *string   `gorm:"type:varchar(250);index"`
	ResetToken     *string   `gorm:"type:varchar(250);index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
