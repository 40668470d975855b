package booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/VaibhaviS123/SafeStay/internal/models"
	"github.com/VaibhaviS123/SafeStay/internal/timezone"
)

type AvailabilityInput struct {
	PropertyID uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
}

type AvailabilityResult struct {
	Available           bool             `json:"available"`
	ConflictingBookings []models.Booking `json:"conflicting_bookings"`
}

// Overlaps is the half-open interval test on [checkIn, checkOut). A stay
// that ends on the day another begins does not overlap it.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	aIn, aOut = timezone.DateOf(aIn), timezone.DateOf(aOut)
	bIn, bOut = timezone.DateOf(bIn), timezone.DateOf(bOut)
	return aIn.Before(bOut) && aOut.After(bIn)
}

// FindConflicts keeps the active bookings whose range overlaps
// [checkIn, checkOut).
func FindConflicts(bookings []models.Booking, checkIn, checkOut time.Time) []models.Booking {
	conflicts := []models.Booking{}
	for _, b := range bookings {
		if !Status(b.Status).IsActive() {
			continue
		}
		if Overlaps(checkIn, checkOut, b.CheckIn, b.CheckOut) {
			conflicts = append(conflicts, b)
		}
	}
	return conflicts
}
