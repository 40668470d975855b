package review

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/VaibhaviS123/SafeStay/internal/audit"
	"github.com/VaibhaviS123/SafeStay/internal/domain"
	bookingdomain "github.com/VaibhaviS123/SafeStay/internal/domain/booking"
	reviewdomain "github.com/VaibhaviS123/SafeStay/internal/domain/review"
	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/models"
)

type CreateReviewInput struct {
	BookingID uuid.UUID
	Rating    int
	Comment   string
}

type CreateReview struct {
	repo  reviewdomain.Repository
	audit audit.Recorder
}

func NewCreateReview(repo reviewdomain.Repository, audit audit.Recorder) *CreateReview {
	return &CreateReview{repo: repo, audit: audit}
}

// Execute stores the guest's review of a completed stay. A booking takes
// one review only.
func (uc *CreateReview) Execute(ctx context.Context, callerID uuid.UUID, in CreateReviewInput) (*models.Review, error) {
	comment, err := reviewdomain.Validate(in.Rating, in.Comment)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFound("booking_not_found", "Booking not found.")
		}
		return nil, httperr.Infra(err)
	}
	if b.UserID != callerID {
		return nil, httperr.Unauthorized("not_booking_guest", "Only the guest of this stay can review it.")
	}
	if bookingdomain.Status(b.Status) != bookingdomain.StatusCompleted {
		return nil, httperr.Validation("stay_not_completed", "You can review a stay once it is completed.")
	}

	reviewed, err := uc.repo.HasReview(ctx, b.ID)
	if err != nil {
		return nil, httperr.Infra(err)
	}
	if reviewed {
		return nil, httperr.Validation("already_reviewed", "You have already reviewed this stay.")
	}

	r := &models.Review{
		PropertyID: b.PropertyID,
		UserID:     callerID,
		BookingID:  b.ID,
		Rating:     in.Rating,
		Comment:    comment,
	}
	if err := uc.repo.CreateReview(ctx, r); err != nil {
		return nil, httperr.Infra(err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &callerID,
		Action:   "review_created",
		Entity:   "review",
		EntityID: &r.ID,
		Metadata: map[string]any{"booking_id": b.ID, "rating": r.Rating},
	})

	return r, nil
}

// ======================================================
// Listing
// ======================================================

type PropertyReviews struct {
	Reviews []models.Review `json:"reviews"`
	Average float64         `json:"average_rating"`
	Count   int             `json:"count"`
}

type ListPropertyReviews struct {
	repo reviewdomain.Repository
}

func NewListPropertyReviews(repo reviewdomain.Repository) *ListPropertyReviews {
	return &ListPropertyReviews{repo: repo}
}

func (uc *ListPropertyReviews) Execute(ctx context.Context, propertyID uuid.UUID) (*PropertyReviews, error) {
	if _, err := uc.repo.GetProperty(ctx, propertyID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFound("property_not_found", "Property not found.")
		}
		return nil, httperr.Infra(err)
	}

	reviews, err := uc.repo.ListReviewsForProperty(ctx, propertyID)
	if err != nil {
		return nil, httperr.Infra(err)
	}
	if reviews == nil {
		reviews = []models.Review{}
	}

	return &PropertyReviews{
		Reviews: reviews,
		Average: reviewdomain.Average(reviews),
		Count:   len(reviews),
	}, nil
}
