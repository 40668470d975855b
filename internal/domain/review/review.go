package review

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/models"
)

const (
	MinRating        = 1
	MaxRating        = 5
	MinCommentLength = 10
)

// Validate checks rating and comment and returns the trimmed comment.
func Validate(rating int, comment string) (string, error) {
	if rating < MinRating || rating > MaxRating {
		return "", httperr.Validation("invalid_rating", "Please select a rating between 1 and 5.")
	}
	comment = strings.TrimSpace(comment)
	if len([]rune(comment)) < MinCommentLength {
		return "", httperr.Validation("comment_too_short", "Review must be at least 10 characters long.")
	}
	return comment, nil
}

// Average returns the mean rating, 0 for no reviews.
func Average(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}

type Repository interface {
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	GetProperty(ctx context.Context, id uuid.UUID) (*models.Property, error)

	// CreateReview fails with already_reviewed when the booking has a review.
	CreateReview(ctx context.Context, r *models.Review) error
	HasReview(ctx context.Context, bookingID uuid.UUID) (bool, error)
	ListReviewsForProperty(ctx context.Context, propertyID uuid.UUID) ([]models.Review, error)
}
