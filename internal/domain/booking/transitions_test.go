package booking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

type edge struct {
	from, to Status
}

func TestAuthorizeClosure(t *testing.T) {
	policy := DefaultPolicy()
	allowed := map[edge]ActorSet{
		{StatusPending, StatusConfirmed}:   ActorOwner,
		{StatusPending, StatusCancelled}:   ActorOwner | ActorGuest,
		{StatusConfirmed, StatusCheckedIn}: ActorGuest,
		{StatusCheckedIn, StatusCompleted}: ActorGuest,
		{StatusConfirmed, StatusCancelled}: ActorGuest,
	}

	callers := []ActorSet{ActorGuest, ActorOwner, ActorGuest | ActorOwner}
	for _, from := range AllStatuses() {
		for _, to := range AllStatuses() {
			for _, caller := range callers {
				tr, err := policy.Authorize(from, to, caller)
				want, ok := allowed[edge{from, to}]
				if ok && want&caller != 0 {
					require.NoError(t, err, "%s -> %s as %s", from, to, caller)
					require.Equal(t, from, tr.From)
					require.Equal(t, to, tr.To)
					continue
				}
				require.Error(t, err, "%s -> %s as %s", from, to, caller)
				require.Equal(t, httperr.KindInvalidTransition, httperr.KindOf(err))
			}
		}
	}
}

func TestAuthorizeTerminalAlwaysClosed(t *testing.T) {
	policy := DefaultPolicy()
	for _, from := range []Status{StatusCompleted, StatusCancelled} {
		for _, to := range AllStatuses() {
			_, err := policy.Authorize(from, to, ActorGuest|ActorOwner)
			require.True(t, httperr.IsBusiness(err, "booking_closed"))
		}
	}
}

func TestPolicyStayActors(t *testing.T) {
	frontDesk, err := NewPolicy("owner")
	require.NoError(t, err)

	_, err = frontDesk.Authorize(StatusConfirmed, StatusCheckedIn, ActorOwner)
	require.NoError(t, err)
	_, err = frontDesk.Authorize(StatusConfirmed, StatusCheckedIn, ActorGuest)
	require.Equal(t, httperr.KindInvalidTransition, httperr.KindOf(err))

	both, err := NewPolicy("guest, owner")
	require.NoError(t, err)
	_, err = both.Authorize(StatusCheckedIn, StatusCompleted, ActorOwner)
	require.NoError(t, err)
	_, err = both.Authorize(StatusCheckedIn, StatusCompleted, ActorGuest)
	require.NoError(t, err)

	_, err = NewPolicy("staff")
	require.Error(t, err)
}

func TestCheckInGuard(t *testing.T) {
	b := &models.Booking{CheckIn: day("2025-06-01"), CheckOut: day("2025-06-05")}

	err := CheckInGuard(b, day("2025-05-31"))
	require.True(t, httperr.IsBusiness(err, "check_in_too_early"))
	require.Equal(t, httperr.KindDateGuardFailed, httperr.KindOf(err))

	require.NoError(t, CheckInGuard(b, day("2025-06-01")))
	require.NoError(t, CheckInGuard(b, day("2025-06-03")))
}

func TestCheckOutGuard(t *testing.T) {
	b := &models.Booking{CheckIn: day("2025-06-01"), CheckOut: day("2025-06-05")}

	require.True(t, httperr.IsBusiness(CheckOutGuard(b, day("2025-06-01")), "check_out_too_early"))
	require.NoError(t, CheckOutGuard(b, day("2025-06-02")))
	require.NoError(t, CheckOutGuard(b, day("2025-06-05")))
	require.True(t, httperr.IsBusiness(CheckOutGuard(b, day("2025-06-06")), "check_out_date_passed"))
}

func TestNotStartedGuard(t *testing.T) {
	b := &models.Booking{CheckIn: day("2025-06-01"), CheckOut: day("2025-06-05")}

	require.NoError(t, NotStartedGuard(b, day("2025-05-20")))
	require.NoError(t, NotStartedGuard(b, day("2025-06-01")))
	require.True(t, httperr.IsBusiness(NotStartedGuard(b, day("2025-06-02")), "booking_already_started"))
}

func TestTransitionCheckDropsTimeOfDay(t *testing.T) {
	policy := DefaultPolicy()
	tr, err := policy.Authorize(StatusConfirmed, StatusCheckedIn, ActorGuest)
	require.NoError(t, err)

	b := &models.Booking{CheckIn: day("2025-06-01"), CheckOut: day("2025-06-05")}
	require.NoError(t, tr.Check(b, time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)))
	require.Error(t, tr.Check(b, time.Date(2025, 5, 31, 23, 59, 0, 0, time.UTC)))
}

func TestApplyStampsOnce(t *testing.T) {
	b := &models.Booking{Status: string(StatusConfirmed)}
	first := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	Apply(b, StatusCheckedIn, first)
	require.Equal(t, string(StatusCheckedIn), b.Status)
	require.NotNil(t, b.CheckedInAt)
	require.True(t, first.Equal(*b.CheckedInAt))
	require.Nil(t, b.CheckedOutAt)

	Apply(b, StatusCheckedIn, first.Add(time.Hour))
	require.True(t, first.Equal(*b.CheckedInAt))

	Apply(b, StatusCompleted, first.Add(48*time.Hour))
	require.True(t, first.Equal(*b.CheckedInAt))
	require.NotNil(t, b.CheckedOutAt)
}

func TestTotalPrice(t *testing.T) {
	price := 120.5
	total := TotalPrice(&price, 3)
	require.NotNil(t, total)
	require.InDelta(t, 361.5, *total, 0.0001)

	require.Nil(t, TotalPrice(nil, 3))
	require.Nil(t, TotalPrice(&price, 0))
}

func TestRolesOf(t *testing.T) {
	guest, owner, stranger := uuid.New(), uuid.New(), uuid.New()
	b := &models.Booking{UserID: guest}

	require.Equal(t, ActorGuest, RolesOf(b, owner, guest))
	require.Equal(t, ActorOwner, RolesOf(b, owner, owner))
	require.True(t, RolesOf(b, owner, stranger).Empty())
	require.Equal(t, ActorGuest|ActorOwner, RolesOf(b, guest, guest))
	require.True(t, RolesOf(b, owner, uuid.Nil).Empty())
}
