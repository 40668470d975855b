package property

import (
	"context"

	"github.com/google/uuid"

	"github.com/VaibhaviS123/SafeStay/internal/models"
)

type SearchFilter struct {
	City         string
	Query        string
	PropertyType string
	MinGuests    int
	MaxPrice     *float64
	Limit        int
	Offset       int
}

type Repository interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)

	// GetProperty loads the property with its images in display order.
	GetProperty(ctx context.Context, id uuid.UUID) (*models.Property, error)

	CreateProperty(ctx context.Context, p *models.Property) error

	// UpdateProperty saves p. When images is non-nil the gallery is replaced.
	UpdateProperty(ctx context.Context, p *models.Property, images []models.PropertyImage) error

	WithTx(ctx context.Context, fn func(tx Repository) error) error
	LockProperty(ctx context.Context, id uuid.UUID) (*models.Property, error)
	CountActiveBookings(ctx context.Context, propertyID uuid.UUID) (int64, error)

	// DeleteProperty soft-deletes the property and removes its image rows.
	DeleteProperty(ctx context.Context, id uuid.UUID) error

	SearchProperties(ctx context.Context, f SearchFilter) ([]models.Property, error)
	ListPropertiesByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Property, error)
}
