package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/VaibhaviS123/SafeStay/internal/domain"
	bookingdomain "github.com/VaibhaviS123/SafeStay/internal/domain/booking"
	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/models"
)

type BookingRepository struct {
	s *Store
}

func (r *BookingRepository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u := r.s.userPtr(id)
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (r *BookingRepository) GetProperty(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.livePropertyCopy(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *BookingRepository) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	b = r.s.bookingView(b)
	return &b, nil
}

func (r *BookingRepository) ListActiveBookings(
	ctx context.Context,
	propertyID uuid.UUID,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.Booking{}
	for _, id := range r.s.bookingOrder {
		b := r.s.bookings[id]
		if b.PropertyID != propertyID || !bookingdomain.Status(b.Status).IsActive() {
			continue
		}
		if b.CheckIn.Before(to) && b.CheckOut.After(from) {
			out = append(out, b)
		}
	}
	return out, nil
}

// WithTx serializes fn against every other WithTx on the same Store. Writes
// done by fn are not rolled back on error.
func (r *BookingRepository) WithTx(ctx context.Context, fn func(tx bookingdomain.Repository) error) error {
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()
	return fn(r)
}

func (r *BookingRepository) LockProperty(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	return r.GetProperty(ctx, id)
}

// CreateBooking rejects an active booking that overlaps another active one,
// mirroring the exclusion constraint on the bookings table.
func (r *BookingRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Status == "" {
		b.Status = string(bookingdomain.InitialStatus())
	}

	if bookingdomain.Status(b.Status).IsActive() {
		for _, existing := range r.s.bookings {
			if existing.PropertyID != b.PropertyID || !bookingdomain.Status(existing.Status).IsActive() {
				continue
			}
			if bookingdomain.Overlaps(existing.CheckIn, existing.CheckOut, b.CheckIn, b.CheckOut) {
				return httperr.OverlapConflict("dates_unavailable", "The property is already booked for these dates.")
			}
		}
	}

	now := r.s.now()
	b.CreatedAt = now
	b.UpdatedAt = now

	stored := *b
	stored.Property, stored.User, stored.Review = nil, nil, nil
	r.s.bookings[b.ID] = stored
	r.s.bookingOrder = append(r.s.bookingOrder, b.ID)
	return nil
}

func (r *BookingRepository) CompareAndSwapStatus(
	ctx context.Context,
	b *models.Booking,
	from bookingdomain.Status,
) (bool, error) {

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.bookings[b.ID]
	if !ok || stored.Status != string(from) {
		return false, nil
	}

	stored.Status = b.Status
	stored.CheckedInAt = copyTime(b.CheckedInAt)
	stored.CheckedOutAt = copyTime(b.CheckedOutAt)
	stored.UpdatedAt = r.s.now()
	r.s.bookings[b.ID] = stored

	view := r.s.bookingView(stored)
	*b = view
	return true, nil
}

func (r *BookingRepository) ListBookingsForGuest(ctx context.Context, guestID uuid.UUID) ([]models.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.Booking{}
	for i := len(r.s.bookingOrder) - 1; i >= 0; i-- {
		b := r.s.bookings[r.s.bookingOrder[i]]
		if b.UserID == guestID {
			v := r.s.bookingView(b)
			v.User = nil
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *BookingRepository) ListBookingsForOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	statuses []string,
) ([]models.Booking, error) {

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	want := make(map[string]bool, len(statuses))
	for _, st := range statuses {
		want[st] = true
	}

	out := []models.Booking{}
	for i := len(r.s.bookingOrder) - 1; i >= 0; i-- {
		b := r.s.bookings[r.s.bookingOrder[i]]
		p, ok := r.s.properties[b.PropertyID]
		if !ok || p.OwnerID != ownerID {
			continue
		}
		if len(want) > 0 && !want[b.Status] {
			continue
		}
		v := r.s.bookingView(b)
		v.Review = nil
		out = append(out, v)
	}
	return out, nil
}

var _ bookingdomain.Repository = (*BookingRepository)(nil)
