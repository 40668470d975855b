package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	PropertyID uuid.UUID `gorm:"type:uuid;not null;index" json:"property_id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	BookingID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"booking_id"`

	User *User `gorm:"constraint:OnDelete:CASCADE;" json:"user,omitempty"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"type:text;not null" json:"comment"`

	CreatedAt time.Time `json:"created_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
