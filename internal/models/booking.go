package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	PropertyID uuid.UUID `gorm:"type:uuid;not null;index" json:"property_id"`
	Property   *Property `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"property,omitempty"`

	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User   *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"guest,omitempty"`

	CheckIn  time.Time `gorm:"type:date;not null" json:"check_in"`
	CheckOut time.Time `gorm:"type:date;not null" json:"check_out"`
	Guests   int       `gorm:"not null" json:"guests"`

	Status string `gorm:"size:20;not null;default:'pending';index" json:"status"`

	TotalPrice      *float64 `gorm:"type:numeric(12,2)" json:"total_price"`
	SpecialRequests string   `gorm:"type:text" json:"special_requests,omitempty"`

	CheckedInAt  *time.Time `json:"checked_in_at"`
	CheckedOutAt *time.Time `json:"checked_out_at"`

	Review *Review `gorm:"foreignKey:BookingID" json:"review,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
