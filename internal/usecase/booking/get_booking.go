package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/VaibhaviS123/SafeStay/internal/domain"
	bookingdomain "github.com/VaibhaviS123/SafeStay/internal/domain/booking"
	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/models"
)

type GetBooking struct {
	repo bookingdomain.Repository
}

func NewGetBooking(repo bookingdomain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

// Execute returns the booking to its guest or to the property owner.
func (uc *GetBooking) Execute(ctx context.Context, bookingID, callerID uuid.UUID) (*models.Booking, error) {
	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFound("booking_not_found", "Booking not found.")
		}
		return nil, httperr.Infra(err)
	}

	var ownerID uuid.UUID
	if b.Property != nil {
		ownerID = b.Property.OwnerID
	}
	if bookingdomain.RolesOf(b, ownerID, callerID).Empty() {
		return nil, httperr.Unauthorized("not_booking_party", "You don't have permission to view this booking.")
	}

	return b, nil
}
