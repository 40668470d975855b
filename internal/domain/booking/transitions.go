package booking

import (
	"fmt"
	"time"

	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/models"
	"github.com/VaibhaviS123/SafeStay/internal/timezone"
)

// DateGuard checks a transition against today's calendar date. Both today and
// the booking dates are compared as calendar dates.
type DateGuard func(b *models.Booking, today time.Time) error

type Transition struct {
	From   Status
	To     Status
	Actors ActorSet
	Guard  DateGuard
}

// Policy is the booking state machine. StayActors decides who may perform
// check-in and check-out: the guest (self-service), the owner (front desk)
// or both of them.
type Policy struct {
	StayActors ActorSet
}

func DefaultPolicy() Policy {
	return Policy{StayActors: ActorGuest}
}

func NewPolicy(stayActors string) (Policy, error) {
	actors, err := ParseActors(stayActors)
	if err != nil {
		return Policy{}, err
	}
	return Policy{StayActors: actors}, nil
}

func (p Policy) Transitions() []Transition {
	return []Transition{
		{From: StatusPending, To: StatusConfirmed, Actors: ActorOwner},
		{From: StatusPending, To: StatusCancelled, Actors: ActorOwner | ActorGuest},
		{From: StatusConfirmed, To: StatusCheckedIn, Actors: p.StayActors, Guard: CheckInGuard},
		{From: StatusCheckedIn, To: StatusCompleted, Actors: p.StayActors, Guard: CheckOutGuard},
		{From: StatusConfirmed, To: StatusCancelled, Actors: ActorGuest, Guard: NotStartedGuard},
	}
}

// Authorize finds the edge from -> to that one of the caller's roles may
// take. It does not evaluate the date guard.
func (p Policy) Authorize(from, to Status, caller ActorSet) (Transition, error) {
	if from.IsTerminal() {
		return Transition{}, httperr.InvalidTransition(
			"booking_closed",
			fmt.Sprintf("Booking is already %s and can no longer change.", from),
		)
	}

	for _, t := range p.Transitions() {
		if t.From != from || t.To != to {
			continue
		}
		if t.Actors&caller == 0 {
			return Transition{}, httperr.InvalidTransition(
				"transition_not_allowed",
				fmt.Sprintf("You cannot move this booking from %s to %s.", from, to),
			)
		}
		return t, nil
	}

	return Transition{}, httperr.InvalidTransition(
		"transition_not_allowed",
		fmt.Sprintf("A booking cannot move from %s to %s.", from, to),
	)
}

// Check runs the edge's date guard, if any.
func (t Transition) Check(b *models.Booking, today time.Time) error {
	if t.Guard == nil {
		return nil
	}
	return t.Guard(b, timezone.DateOf(today))
}

// ===============================
// Date guards
// ===============================

func CheckInGuard(b *models.Booking, today time.Time) error {
	checkIn := timezone.DateOf(b.CheckIn)
	if today.Before(checkIn) {
		return httperr.DateGuardFailed(
			"check_in_too_early",
			fmt.Sprintf("Cannot check in yet - check-in date is %s.", checkIn.Format(timezone.DateLayout)),
		)
	}
	return nil
}

func CheckOutGuard(b *models.Booking, today time.Time) error {
	checkIn := timezone.DateOf(b.CheckIn)
	checkOut := timezone.DateOf(b.CheckOut)

	if !today.After(checkIn) {
		return httperr.DateGuardFailed(
			"check_out_too_early",
			"Cannot check out on or before the check-in date.",
		)
	}
	if today.After(checkOut) {
		return httperr.DateGuardFailed(
			"check_out_date_passed",
			fmt.Sprintf("Check-out date has passed (%s).", checkOut.Format(timezone.DateLayout)),
		)
	}
	return nil
}

func NotStartedGuard(b *models.Booking, today time.Time) error {
	if timezone.DateOf(b.CheckIn).Before(today) {
		return httperr.DateGuardFailed(
			"booking_already_started",
			"Cannot cancel a booking that has already started.",
		)
	}
	return nil
}
