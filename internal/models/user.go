package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleGuest = "guest"
	RoleOwner = "owner"
)

// User is the profile row paired with an auth identity. ID is shared with the
// credential issued by the auth provider.
type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	FullName string `gorm:"size:120;not null" json:"full_name"`
	Email    string `gorm:"size:160;uniqueIndex;not null" json:"email"`
	Role     string `gorm:"size:20;not null;default:'guest'" json:"role"`

	Phone   string `gorm:"size:20" json:"phone,omitempty"`
	Address string `gorm:"size:255" json:"address,omitempty"`
	City    string `gorm:"size:100" json:"city,omitempty"`
	Bio     string `gorm:"type:text" json:"bio,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) IsOwner() bool {
	return u.Role == RoleOwner
}
