package booking

import (
	"time"

	"github.com/VaibhaviS123/SafeStay/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Apply moves b to the target status and stamps the stay timestamps. A
// timestamp that is already set is never overwritten.
func Apply(b *models.Booking, to Status, now time.Time) {
	b.Status = string(to)

	switch to {
	case StatusCheckedIn:
		if b.CheckedInAt == nil {
			at := now
			b.CheckedInAt = &at
		}
	case StatusCompleted:
		if b.CheckedOutAt == nil {
			at := now
			b.CheckedOutAt = &at
		}
	}
}

// TotalPrice is nights x price per night, or nil when the property has no
// price.
func TotalPrice(pricePerNight *float64, nights int) *float64 {
	if pricePerNight == nil || nights <= 0 {
		return nil
	}
	total := *pricePerNight * float64(nights)
	return &total
}
