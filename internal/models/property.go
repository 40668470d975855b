package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Property struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	OwnerID uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Owner   *User     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"owner,omitempty"`

	Name        string `gorm:"size:150;not null" json:"name"`
	Location    string `gorm:"size:255" json:"location"`
	City        string `gorm:"size:100;not null;index" json:"city"`
	Area        string `gorm:"size:100;not null" json:"area"`
	Address     string `gorm:"size:255" json:"address,omitempty"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	SafetyRules string `gorm:"type:text" json:"safety_rules,omitempty"`

	PricePerNight *float64 `gorm:"type:numeric(12,2)" json:"price_per_night"`
	Bedrooms      int      `gorm:"not null;default:1" json:"bedrooms"`
	Bathrooms     int      `gorm:"not null;default:1" json:"bathrooms"`
	MaxGuests     int      `gorm:"not null;default:2" json:"max_guests"`
	PropertyType  string   `gorm:"size:30;not null;default:'apartment'" json:"property_type"`

	Amenities pq.StringArray `gorm:"type:text[]" json:"amenities"`
	ImageURL  string         `gorm:"size:500" json:"image_url,omitempty"`

	Images []PropertyImage `gorm:"constraint:OnDelete:CASCADE;" json:"images,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// PropertyImage is one entry of a property's ordered gallery. ImageRef is
// either an object key in the image bucket or an absolute URL.
type PropertyImage struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PropertyID   uuid.UUID `gorm:"type:uuid;not null;index" json:"property_id"`
	ImageRef     string    `gorm:"size:500;not null" json:"image_ref"`
	DisplayOrder int       `gorm:"not null" json:"display_order"`

	// URL is resolved at read time and never stored.
	URL string `gorm:"-" json:"url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (i *PropertyImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
