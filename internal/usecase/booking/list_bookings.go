package booking

import (
	"context"

	"github.com/google/uuid"

	bookingdomain "github.com/VaibhaviS123/SafeStay/internal/domain/booking"
	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/models"
)

// ======================================================
// Guest dashboard
// ======================================================

type GuestBooking struct {
	models.Booking
	Reviewed bool `json:"reviewed"`
}

// GuestBookings groups a guest's bookings the way the dashboard shows them.
// Active holds confirmed and checked-in stays.
type GuestBookings struct {
	Active    []GuestBooking `json:"active"`
	Pending   []GuestBooking `json:"pending"`
	Completed []GuestBooking `json:"completed"`
	Cancelled []GuestBooking `json:"cancelled"`
}

type ListGuestBookings struct {
	repo bookingdomain.Repository
}

func NewListGuestBookings(repo bookingdomain.Repository) *ListGuestBookings {
	return &ListGuestBookings{repo: repo}
}

func (uc *ListGuestBookings) Execute(ctx context.Context, guestID uuid.UUID) (*GuestBookings, error) {
	bookings, err := uc.repo.ListBookingsForGuest(ctx, guestID)
	if err != nil {
		return nil, httperr.Infra(err)
	}

	out := &GuestBookings{
		Active:    []GuestBooking{},
		Pending:   []GuestBooking{},
		Completed: []GuestBooking{},
		Cancelled: []GuestBooking{},
	}
	for _, b := range bookings {
		gb := GuestBooking{Booking: b, Reviewed: b.Review != nil}

		switch bookingdomain.Status(b.Status) {
		case bookingdomain.StatusPending:
			out.Pending = append(out.Pending, gb)
		case bookingdomain.StatusConfirmed, bookingdomain.StatusCheckedIn:
			out.Active = append(out.Active, gb)
		case bookingdomain.StatusCompleted:
			out.Completed = append(out.Completed, gb)
		case bookingdomain.StatusCancelled:
			out.Cancelled = append(out.Cancelled, gb)
		}
	}

	return out, nil
}

// ======================================================
// Owner dashboard
// ======================================================

type ListOwnerBookings struct {
	repo bookingdomain.Repository
}

func NewListOwnerBookings(repo bookingdomain.Repository) *ListOwnerBookings {
	return &ListOwnerBookings{repo: repo}
}

// Execute lists bookings across every property of ownerID, newest first. An
// empty statuses list means all statuses.
func (uc *ListOwnerBookings) Execute(
	ctx context.Context,
	ownerID uuid.UUID,
	statuses []string,
) ([]models.Booking, error) {

	filter := make([]string, 0, len(statuses))
	for _, s := range statuses {
		st, ok := bookingdomain.ParseStatus(s)
		if !ok {
			return nil, httperr.Validation("invalid_status", "Unknown booking status: "+s)
		}
		filter = append(filter, st.String())
	}

	bookings, err := uc.repo.ListBookingsForOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, httperr.Infra(err)
	}
	return bookings, nil
}
