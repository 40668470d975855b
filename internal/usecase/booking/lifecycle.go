package booking

import (
	"context"

	"github.com/google/uuid"

	bookingdomain "github.com/VaibhaviS123/SafeStay/internal/domain/booking"
	"github.com/VaibhaviS123/SafeStay/internal/models"
)

// ======================================================
// Guest cancel
// ======================================================

type CancelBooking struct {
	engine *SetBookingStatus
}

func NewCancelBooking(engine *SetBookingStatus) *CancelBooking {
	return &CancelBooking{engine: engine}
}

// Execute cancels the booking on behalf of its guest. Owners use
// RejectBooking instead.
func (uc *CancelBooking) Execute(ctx context.Context, bookingID, callerID uuid.UUID) (*models.Booking, error) {
	return uc.engine.apply(ctx, SetStatusInput{
		BookingID: bookingID,
		CallerID:  callerID,
		Status:    string(bookingdomain.StatusCancelled),
	}, bookingdomain.ActorGuest, "not_booking_guest")
}

// ======================================================
// Owner approve / reject
// ======================================================

type ApproveBooking struct {
	engine *SetBookingStatus
}

func NewApproveBooking(engine *SetBookingStatus) *ApproveBooking {
	return &ApproveBooking{engine: engine}
}

func (uc *ApproveBooking) Execute(ctx context.Context, bookingID, callerID uuid.UUID) (*models.Booking, error) {
	return uc.engine.apply(ctx, SetStatusInput{
		BookingID: bookingID,
		CallerID:  callerID,
		Status:    string(bookingdomain.StatusConfirmed),
	}, bookingdomain.ActorOwner, "not_property_owner")
}

type RejectBooking struct {
	engine *SetBookingStatus
}

func NewRejectBooking(engine *SetBookingStatus) *RejectBooking {
	return &RejectBooking{engine: engine}
}

func (uc *RejectBooking) Execute(ctx context.Context, bookingID, callerID uuid.UUID) (*models.Booking, error) {
	return uc.engine.apply(ctx, SetStatusInput{
		BookingID: bookingID,
		CallerID:  callerID,
		Status:    string(bookingdomain.StatusCancelled),
	}, bookingdomain.ActorOwner, "not_property_owner")
}

// ======================================================
// Check-in / check-out
// ======================================================

type CheckIn struct {
	engine *SetBookingStatus
}

func NewCheckIn(engine *SetBookingStatus) *CheckIn {
	return &CheckIn{engine: engine}
}

func (uc *CheckIn) Execute(ctx context.Context, bookingID, callerID uuid.UUID) (*models.Booking, error) {
	return uc.engine.apply(ctx, SetStatusInput{
		BookingID: bookingID,
		CallerID:  callerID,
		Status:    string(bookingdomain.StatusCheckedIn),
	}, uc.engine.policy.StayActors, "stay_actor_required")
}

type CheckOut struct {
	engine *SetBookingStatus
}

func NewCheckOut(engine *SetBookingStatus) *CheckOut {
	return &CheckOut{engine: engine}
}

func (uc *CheckOut) Execute(ctx context.Context, bookingID, callerID uuid.UUID) (*models.Booking, error) {
	return uc.engine.apply(ctx, SetStatusInput{
		BookingID: bookingID,
		CallerID:  callerID,
		Status:    string(bookingdomain.StatusCompleted),
	}, uc.engine.policy.StayActors, "stay_actor_required")
}
