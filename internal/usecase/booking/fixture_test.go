package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/VaibhaviS123/SafeStay/internal/audit"
	bookingdomain "github.com/VaibhaviS123/SafeStay/internal/domain/booking"
	"github.com/VaibhaviS123/SafeStay/internal/infra/memory"
	"github.com/VaibhaviS123/SafeStay/internal/models"
)

type recorder struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *recorder) Dispatch(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Action
	}
	return out
}

type fixture struct {
	t     *testing.T
	ctx   context.Context
	repos memory.Repos
	audit *recorder
	now   time.Time

	create   *CreateBooking
	avail    *CheckAvailability
	engine   *SetBookingStatus
	cancel   *CancelBooking
	approve  *ApproveBooking
	reject   *RejectBooking
	checkIn  *CheckIn
	checkOut *CheckOut

	guestA     models.User
	guestB     models.User
	owner      models.User
	otherOwner models.User
	prop       models.Property
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func newFixture(t *testing.T) *fixture {
	return newFixtureWith(t, bookingdomain.DefaultPolicy(), time.UTC)
}

func newFixtureWith(t *testing.T, policy bookingdomain.Policy, loc *time.Location) *fixture {
	t.Helper()

	f := &fixture{
		t:     t,
		ctx:   context.Background(),
		repos: memory.NewStore().Repos(),
		audit: &recorder{},
		now:   time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC),
	}
	clock := func() time.Time { return f.now }

	f.create = NewCreateBooking(f.repos.Bookings, clock, loc, f.audit)
	f.avail = NewCheckAvailability(f.repos.Bookings)
	f.engine = NewSetBookingStatus(f.repos.Bookings, policy, clock, loc, f.audit)
	f.cancel = NewCancelBooking(f.engine)
	f.approve = NewApproveBooking(f.engine)
	f.reject = NewRejectBooking(f.engine)
	f.checkIn = NewCheckIn(f.engine)
	f.checkOut = NewCheckOut(f.engine)

	f.guestA = f.user("a@example.com", models.RoleGuest)
	f.guestB = f.user("b@example.com", models.RoleGuest)
	f.owner = f.user("owner@example.com", models.RoleOwner)
	f.otherOwner = f.user("other@example.com", models.RoleOwner)
	f.prop = f.property(f.owner, 4, 100)

	return f
}

func (f *fixture) user(email, role string) models.User {
	f.t.Helper()
	u := models.User{FullName: email, Email: email, Role: role}
	require.NoError(f.t, f.repos.Accounts.CreateUser(f.ctx, &u))
	return u
}

func (f *fixture) property(owner models.User, maxGuests int, price float64) models.Property {
	f.t.Helper()
	p := models.Property{
		OwnerID:       owner.ID,
		Name:          "Lake House",
		City:          "Pune",
		Area:          "Baner",
		MaxGuests:     maxGuests,
		PricePerNight: &price,
	}
	require.NoError(f.t, f.repos.Properties.CreateProperty(f.ctx, &p))
	return p
}

func (f *fixture) book(guest models.User, in, out string, guests int) (*models.Booking, error) {
	return f.create.Execute(f.ctx, CreateBookingInput{
		PropertyID: f.prop.ID,
		GuestID:    guest.ID,
		CheckIn:    day(in),
		CheckOut:   day(out),
		Guests:     guests,
	})
}

func (f *fixture) mustBook(guest models.User, in, out string) *models.Booking {
	f.t.Helper()
	b, err := f.book(guest, in, out, 2)
	require.NoError(f.t, err)
	return b
}

func (f *fixture) stored(b *models.Booking) *models.Booking {
	f.t.Helper()
	got, err := f.repos.Bookings.GetBooking(f.ctx, b.ID)
	require.NoError(f.t, err)
	return got
}

func (f *fixture) setStatus(b *models.Booking, caller models.User, status string) (*models.Booking, error) {
	return f.engine.Execute(f.ctx, SetStatusInput{
		BookingID: b.ID,
		CallerID:  caller.ID,
		Status:    status,
	})
}

func (f *fixture) at(s string) {
	f.now = day(s).Add(12 * time.Hour)
}
