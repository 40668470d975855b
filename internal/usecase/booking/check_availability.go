package booking

import (
	"context"

	bookingdomain "github.com/VaibhaviS123/SafeStay/internal/domain/booking"
	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/timezone"
)

type CheckAvailability struct {
	repo bookingdomain.Repository
}

func NewCheckAvailability(repo bookingdomain.Repository) *CheckAvailability {
	return &CheckAvailability{repo: repo}
}

// Execute is a pure read. A datastore failure is returned as an error and
// never reported as available.
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	in bookingdomain.AvailabilityInput,
) (*bookingdomain.AvailabilityResult, error) {

	ctx, span := tracer.Start(ctx, "booking.check_availability")
	defer span.End()

	if in.CheckIn.IsZero() || in.CheckOut.IsZero() {
		return nil, httperr.Validation("dates_required", "Please select check-in and check-out dates.")
	}
	checkIn := timezone.DateOf(in.CheckIn)
	checkOut := timezone.DateOf(in.CheckOut)
	if !checkOut.After(checkIn) {
		return nil, httperr.Validation("invalid_date_range", "Check-out date must be after check-in date.")
	}

	if _, err := uc.repo.GetProperty(ctx, in.PropertyID); err != nil {
		return nil, propertyLookupError(err)
	}

	existing, err := uc.repo.ListActiveBookings(ctx, in.PropertyID, checkIn, checkOut)
	if err != nil {
		return nil, httperr.Infra(err)
	}

	conflicts := bookingdomain.FindConflicts(existing, checkIn, checkOut)
	return &bookingdomain.AvailabilityResult{
		Available:           len(conflicts) == 0,
		ConflictingBookings: conflicts,
	}, nil
}
