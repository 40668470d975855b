package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/VaibhaviS123/SafeStay/internal/models"
)

type Repository interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)

	// UpdateProfile writes the editable profile fields only; email and role
	// are never touched.
	UpdateProfile(ctx context.Context, u *models.User) error
}
