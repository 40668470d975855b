package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/VaibhaviS123/SafeStay/internal/models"
)

type Repository interface {
	// -------- Lookups --------
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetProperty(ctx context.Context, id uuid.UUID) (*models.Property, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)

	// -------- Availability --------

	// ListActiveBookings returns bookings of the property in an active status
	// whose range touches [from, to].
	ListActiveBookings(ctx context.Context, propertyID uuid.UUID, from, to time.Time) ([]models.Booking, error)

	// -------- Create (atomic) --------

	// WithTx runs fn inside one datastore transaction. The Repository handed
	// to fn is bound to that transaction.
	WithTx(ctx context.Context, fn func(tx Repository) error) error

	// LockProperty loads the property and holds a row lock on it until the
	// surrounding transaction ends.
	LockProperty(ctx context.Context, id uuid.UUID) (*models.Property, error)

	CreateBooking(ctx context.Context, b *models.Booking) error

	// -------- State change --------

	// CompareAndSwapStatus persists b's status and stay timestamps only if
	// the stored status still equals from. On success b is refreshed from
	// the updated row.
	CompareAndSwapStatus(ctx context.Context, b *models.Booking, from Status) (bool, error)

	// -------- Listing --------
	ListBookingsForGuest(ctx context.Context, guestID uuid.UUID) ([]models.Booking, error)
	ListBookingsForOwner(ctx context.Context, ownerID uuid.UUID, statuses []string) ([]models.Booking, error)
}
