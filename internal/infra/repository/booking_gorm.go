package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/VaibhaviS123/SafeStay/internal/domain/booking"
	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Lookups
// --------------------------------------------------

func (r *BookingGormRepository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return findUser(ctx, r.db, id)
}

func (r *BookingGormRepository) GetProperty(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	var p models.Property
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// GetBooking preloads the property even when it was deleted, so history
// stays readable.
func (r *BookingGormRepository) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Property", unscoped).
		Preload("User").
		Preload("Review").
		First(&b, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListActiveBookings(
	ctx context.Context,
	propertyID uuid.UUID,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"property_id = ? AND status IN ? AND check_in < ? AND check_out > ?",
			propertyID,
			domain.ActiveStatusStrings(),
			to,
			from,
		).
		Order("check_in ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Create (atomic)
// --------------------------------------------------

func (r *BookingGormRepository) WithTx(ctx context.Context, fn func(tx domain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

func (r *BookingGormRepository) LockProperty(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	var p models.Property
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&p, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *BookingGormRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(b).Error
	if httperr.IsExclusionConflict(err) {
		return httperr.OverlapConflict("dates_unavailable", "The property is already booked for these dates.")
	}
	return err
}

// --------------------------------------------------
// State change
// --------------------------------------------------

func (r *BookingGormRepository) CompareAndSwapStatus(
	ctx context.Context,
	b *models.Booking,
	from domain.Status,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(b).
		Omit(clause.Associations).
		Clauses(clause.Returning{}).
		Where("status = ?", string(from)).
		Updates(map[string]any{
			"status":         b.Status,
			"checked_in_at":  b.CheckedInAt,
			"checked_out_at": b.CheckedOutAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForGuest(ctx context.Context, guestID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Property", unscoped).
		Preload("Review").
		Where("user_id = ?", guestID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	statuses []string,
) ([]models.Booking, error) {

	q := r.db.WithContext(ctx).
		Preload("Property", unscoped).
		Preload("User").
		Joins("JOIN properties ON properties.id = bookings.property_id").
		Where("properties.owner_id = ?", ownerID)
	if len(statuses) > 0 {
		q = q.Where("bookings.status IN ?", statuses)
	}

	var bookings []models.Booking
	if err := q.Order("bookings.created_at DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
