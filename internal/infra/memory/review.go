package memory

import (
	"context"

	"github.com/google/uuid"

	"github.com/VaibhaviS123/SafeStay/internal/domain"
	reviewdomain "github.com/VaibhaviS123/SafeStay/internal/domain/review"
	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/models"
)

type ReviewRepository struct {
	s *Store
}

func (r *ReviewRepository) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.bookings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

func (r *ReviewRepository) GetProperty(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.livePropertyCopy(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

// CreateReview enforces one review per booking like the unique index does.
func (r *ReviewRepository) CreateReview(ctx context.Context, rev *models.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.reviewForBooking(rev.BookingID) != nil {
		return httperr.Validation("already_reviewed", "You have already reviewed this stay.")
	}
	if rev.ID == uuid.Nil {
		rev.ID = uuid.New()
	}
	rev.CreatedAt = r.s.now()

	stored := *rev
	stored.User = nil
	r.s.reviews[rev.ID] = stored
	r.s.reviewOrder = append(r.s.reviewOrder, rev.ID)
	return nil
}

func (r *ReviewRepository) HasReview(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.s.reviewForBooking(bookingID) != nil, nil
}

func (r *ReviewRepository) ListReviewsForProperty(ctx context.Context, propertyID uuid.UUID) ([]models.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.Review{}
	for i := len(r.s.reviewOrder) - 1; i >= 0; i-- {
		rev := r.s.reviews[r.s.reviewOrder[i]]
		if rev.PropertyID == propertyID {
			rev.User = r.s.userPtr(rev.UserID)
			out = append(out, rev)
		}
	}
	return out, nil
}

var _ reviewdomain.Repository = (*ReviewRepository)(nil)
