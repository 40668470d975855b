package models

import (
	"time"

	"github.com/google/uuid"
)

// Credential belongs to the auth provider, not to the profile.
type Credential struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"size:160;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:255;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
