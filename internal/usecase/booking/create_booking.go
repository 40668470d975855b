package booking

import (
	"context"
	"errors"
	"fmt"
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
	"github.com/VaibhaviS123/SafeStay/internal/tracing"
)

var tracer = tracing.Tracer("booking")

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	PropertyID uuid.UUID
	GuestID    uuid.UUID

	CheckIn  time.Time
	CheckOut time.Time
	Guests   int

	SpecialRequests string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  bookingdomain.Repository
	clock timezone.Clock
	loc   *time.Location
	audit audit.Recorder
}

func NewCreateBooking(
	repo bookingdomain.Repository,
	clock timezone.Clock,
	loc *time.Location,
	audit audit.Recorder,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		clock: clock,
		loc:   loc,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	ctx, span := tracer.Start(ctx, "booking.create")
	defer span.End()
	span.SetAttributes(attribute.String("property_id", in.PropertyID.String()))

	// --------------------------------------------------
	// 1) Caller must be a guest
	// --------------------------------------------------
	guest, err := uc.repo.GetUser(ctx, in.GuestID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.Unauthorized("profile_missing", "Your account has no profile.")
		}
		return nil, httperr.Infra(err)
	}
	if guest.Role != models.RoleGuest {
		return nil, httperr.Unauthorized("role_required", "Only guests can book properties.")
	}

	// --------------------------------------------------
	// 2) Date sanity
	// --------------------------------------------------
	if in.CheckIn.IsZero() || in.CheckOut.IsZero() {
		return nil, httperr.Validation("dates_required", "Please select check-in and check-out dates.")
	}
	checkIn := timezone.DateOf(in.CheckIn)
	checkOut := timezone.DateOf(in.CheckOut)

	if !checkOut.After(checkIn) {
		return nil, httperr.Validation("invalid_date_range", "Check-out date must be after check-in date.")
	}
	if checkIn.Before(timezone.Today(uc.clock(), uc.loc)) {
		return nil, httperr.Validation("check_in_in_past", "Check-in date cannot be in the past.")
	}

	// --------------------------------------------------
	// 3) Guest count
	// --------------------------------------------------
	if in.Guests <= 0 {
		return nil, httperr.Validation("invalid_guest_count", "Number of guests must be at least 1.")
	}

	prop, err := uc.repo.GetProperty(ctx, in.PropertyID)
	if err != nil {
		return nil, propertyLookupError(err)
	}
	if in.Guests > prop.MaxGuests {
		return nil, httperr.Validation("too_many_guests", fmt.Sprintf("This property allows a maximum of %d guests.", prop.MaxGuests))
	}

	// --------------------------------------------------
	// 4) Availability + insert, atomically
	// --------------------------------------------------
	b := &models.Booking{
		PropertyID:      prop.ID,
		UserID:          guest.ID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          in.Guests,
		Status:          string(bookingdomain.InitialStatus()),
		TotalPrice:      bookingdomain.TotalPrice(prop.PricePerNight, timezone.Nights(checkIn, checkOut)),
		SpecialRequests: in.SpecialRequests,
	}

	err = uc.repo.WithTx(ctx, func(tx bookingdomain.Repository) error {
		if _, err := tx.LockProperty(ctx, prop.ID); err != nil {
			return propertyLookupError(err)
		}

		existing, err := tx.ListActiveBookings(ctx, prop.ID, checkIn, checkOut)
		if err != nil {
			return httperr.Infra(err)
		}
		if conflicts := bookingdomain.FindConflicts(existing, checkIn, checkOut); len(conflicts) > 0 {
			return errDatesUnavailable
		}

		return tx.CreateBooking(ctx, b)
	})
	if err != nil {
		if httperr.KindOf(err) == httperr.KindOverlapConflict {
			metrics.ObserveOverlapConflict()
			uc.audit.Dispatch(audit.Event{
				UserID:   &guest.ID,
				Action:   "booking_overlap_conflict",
				Entity:   "property",
				EntityID: &prop.ID,
				Metadata: map[string]string{
					"check_in":  checkIn.Format(timezone.DateLayout),
					"check_out": checkOut.Format(timezone.DateLayout),
				},
			})
		}
		return nil, httperr.Infra(err)
	}

	uc.audit.Dispatch(bookingEvent("booking_created", guest.ID, b, map[string]any{
		"property_id": prop.ID,
		"check_in":    checkIn.Format(timezone.DateLayout),
		"check_out":   checkOut.Format(timezone.DateLayout),
		"guests":      b.Guests,
	}))

	return b, nil
}

var errDatesUnavailable = httperr.OverlapConflict(
	"dates_unavailable",
	"The property is already booked for these dates.",
)

func propertyLookupError(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.NotFound("property_not_found", "Property not found.")
	}
	return httperr.Infra(err)
}
