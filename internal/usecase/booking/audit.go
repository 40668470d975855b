package booking

import (
	"github.com/google/uuid"

	"github.com/VaibhaviS123/SafeStay/internal/audit"
	"github.com/VaibhaviS123/SafeStay/internal/models"
)

func bookingEvent(action string, userID uuid.UUID, b *models.Booking, meta any) audit.Event {
	uid := userID
	bid := b.ID
	return audit.Event{
		UserID:   &uid,
		Action:   action,
		Entity:   "booking",
		EntityID: &bid,
		Metadata: meta,
	}
}
