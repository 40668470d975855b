package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/VaibhaviS123/SafeStay/internal/audit"
	"github.com/VaibhaviS123/SafeStay/internal/domain"
	bookingdomain "github.com/VaibhaviS123/SafeStay/internal/domain/booking"
	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/metrics"
	"github.com/VaibhaviS123/SafeStay/internal/models"
	"github.com/VaibhaviS123/SafeStay/internal/timezone"
)

type SetStatusInput struct {
	BookingID uuid.UUID
	CallerID  uuid.UUID
	Status    string
}

// SetBookingStatus is the single entry point for every status change after
// creation. The convenience use cases below all go through it.
type SetBookingStatus struct {
	repo   bookingdomain.Repository
	policy bookingdomain.Policy
	clock  timezone.Clock
	loc    *time.Location
	audit  audit.Recorder
}

func NewSetBookingStatus(
	repo bookingdomain.Repository,
	policy bookingdomain.Policy,
	clock timezone.Clock,
	loc *time.Location,
	audit audit.Recorder,
) *SetBookingStatus {
	return &SetBookingStatus{
		repo:   repo,
		policy: policy,
		clock:  clock,
		loc:    loc,
		audit:  audit,
	}
}

func (uc *SetBookingStatus) Execute(ctx context.Context, in SetStatusInput) (*models.Booking, error) {
	return uc.apply(ctx, in, bookingdomain.ActorGuest|bookingdomain.ActorOwner, "")
}

// apply runs the state machine with the caller's roles narrowed to allowed.
// A caller left with no role gets denied; denied is the code used then and
// defaults to not_booking_party.
func (uc *SetBookingStatus) apply(
	ctx context.Context,
	in SetStatusInput,
	allowed bookingdomain.ActorSet,
	denied string,
) (*models.Booking, error) {

	ctx, span := tracer.Start(ctx, "booking.set_status")
	defer span.End()
	span.SetAttributes(
		attribute.String("booking_id", in.BookingID.String()),
		attribute.String("target", in.Status),
	)

	// --------------------------------------------------
	// 1) Booking + property
	// --------------------------------------------------
	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFound("booking_not_found", "Booking not found.")
		}
		return nil, httperr.Infra(err)
	}
	if b.Property == nil {
		return nil, httperr.NotFound("property_not_found", "Property not found.")
	}

	// --------------------------------------------------
	// 2) Caller roles
	// --------------------------------------------------
	roles := bookingdomain.RolesOf(b, b.Property.OwnerID, in.CallerID)
	if roles.Empty() {
		return nil, httperr.Unauthorized("not_booking_party", "You don't have permission to change this booking.")
	}
	roles &= allowed
	if roles.Empty() {
		if denied == "" {
			denied = "not_booking_party"
		}
		return nil, httperr.Unauthorized(denied, "You don't have permission to do this on this booking.")
	}

	// --------------------------------------------------
	// 3) Edge + date guard
	// --------------------------------------------------
	from := bookingdomain.Status(b.Status)
	if from.IsTerminal() {
		err := httperr.InvalidTransition("booking_closed", "Booking is already "+from.String()+" and can no longer change.")
		metrics.ObserveTransition(from.String(), in.Status, string(httperr.KindOf(err)))
		return nil, err
	}

	to, ok := bookingdomain.ParseStatus(in.Status)
	if !ok {
		return nil, httperr.Validation("invalid_status", "Unknown booking status.")
	}

	t, err := uc.policy.Authorize(from, to, roles)
	if err != nil {
		metrics.ObserveTransition(from.String(), to.String(), string(httperr.KindOf(err)))
		return nil, err
	}

	now := uc.clock()
	if err := t.Check(b, timezone.Today(now, uc.loc)); err != nil {
		metrics.ObserveTransition(from.String(), to.String(), string(httperr.KindOf(err)))
		return nil, err
	}

	// --------------------------------------------------
	// 4) Persist (compare-and-swap on the old status)
	// --------------------------------------------------
	bookingdomain.Apply(b, to, now)

	swapped, err := uc.repo.CompareAndSwapStatus(ctx, b, from)
	if err != nil {
		return nil, httperr.Infra(err)
	}
	if !swapped {
		err := httperr.InvalidTransition("booking_changed", "This booking was changed by someone else. Please reload and try again.")
		metrics.ObserveTransition(from.String(), to.String(), string(httperr.KindOf(err)))
		return nil, err
	}

	metrics.ObserveTransition(from.String(), to.String(), "ok")
	uc.audit.Dispatch(bookingEvent("booking_"+to.String(), in.CallerID, b, map[string]string{
		"from": from.String(),
		"to":   to.String(),
		"by":   roles.String(),
	}))

	return b, nil
}
