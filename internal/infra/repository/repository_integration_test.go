//go:build integration

package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	dbpkg "github.com/VaibhaviS123/SafeStay/internal/db"
	bookingdomain "github.com/VaibhaviS123/SafeStay/internal/domain/booking"
	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/models"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		ExposedPorts: []string{"5432/tcp"},
		AutoRemove:   true,
		Env: map[string]string{
			"POSTGRES_USER":     "safestay",
			"POSTGRES_PASSWORD": "safestay",
			"POSTGRES_DB":       "safestay",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	postgres, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "start postgres:", err)
		os.Exit(1)
	}

	host, err := postgres.Host(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "container host:", err)
		os.Exit(1)
	}
	port, err := postgres.MappedPort(ctx, "5432/tcp")
	if err != nil {
		fmt.Fprintln(os.Stderr, "container port:", err)
		os.Exit(1)
	}

	dsn := fmt.Sprintf("postgres://safestay:safestay@%s:%s/safestay?sslmode=disable", host, port.Port())
	testDB, err = dbpkg.NewDB(dsn, log.NewNopLogger())
	if err != nil {
		fmt.Fprintln(os.Stderr, "open database:", err)
		os.Exit(1)
	}

	code := m.Run()
	_ = postgres.Terminate(ctx)
	os.Exit(code)
}

func seed(t *testing.T) (models.User, models.User, models.Property) {
	t.Helper()
	ctx := context.Background()
	accounts := NewAccountGormRepository(testDB)
	props := NewPropertyGormRepository(testDB)

	suffix := time.Now().UnixNano()
	owner := models.User{FullName: "Owner", Email: fmt.Sprintf("owner%d@example.com", suffix), Role: models.RoleOwner}
	guest := models.User{FullName: "Guest", Email: fmt.Sprintf("guest%d@example.com", suffix), Role: models.RoleGuest}
	require.NoError(t, accounts.CreateUser(ctx, &owner))
	require.NoError(t, accounts.CreateUser(ctx, &guest))

	p := models.Property{OwnerID: owner.ID, Name: "Flat", City: "Goa", Area: "Baga", MaxGuests: 4, PropertyType: "apartment"}
	require.NoError(t, props.CreateProperty(ctx, &p))
	return owner, guest, p
}

func day(d int) time.Time {
	return time.Date(2030, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestExclusionConstraintRejectsOverlap(t *testing.T) {
	ctx := context.Background()
	_, guest, p := seed(t)
	repo := NewBookingGormRepository(testDB)

	first := models.Booking{PropertyID: p.ID, UserID: guest.ID, CheckIn: day(10), CheckOut: day(12), Guests: 1, Status: "pending"}
	require.NoError(t, repo.CreateBooking(ctx, &first))

	overlap := models.Booking{PropertyID: p.ID, UserID: guest.ID, CheckIn: day(11), CheckOut: day(13), Guests: 1, Status: "pending"}
	err := repo.CreateBooking(ctx, &overlap)
	require.Equal(t, httperr.KindOverlapConflict, httperr.KindOf(err))

	adjacent := models.Booking{PropertyID: p.ID, UserID: guest.ID, CheckIn: day(12), CheckOut: day(14), Guests: 1, Status: "pending"}
	require.NoError(t, repo.CreateBooking(ctx, &adjacent))

	active, err := repo.ListActiveBookings(ctx, p.ID, day(1), day(31))
	require.NoError(t, err)
	require.Len(t, active, 2)
}

func TestCompareAndSwapStatus(t *testing.T) {
	ctx := context.Background()
	_, guest, p := seed(t)
	repo := NewBookingGormRepository(testDB)

	b := models.Booking{PropertyID: p.ID, UserID: guest.ID, CheckIn: day(20), CheckOut: day(22), Guests: 2, Status: "pending"}
	require.NoError(t, repo.CreateBooking(ctx, &b))

	b.Status = "confirmed"
	ok, err := repo.CompareAndSwapStatus(ctx, &b, bookingdomain.StatusPending)
	require.NoError(t, err)
	require.True(t, ok)

	stale := b
	stale.Status = "cancelled"
	ok, err = repo.CompareAndSwapStatus(ctx, &stale, bookingdomain.StatusPending)
	require.NoError(t, err)
	require.False(t, ok)

	got, err := repo.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	require.Equal(t, "confirmed", got.Status)
	require.NotNil(t, got.Property)
}

func TestReviewUniquePerBooking(t *testing.T) {
	ctx := context.Background()
	_, guest, p := seed(t)
	bookings := NewBookingGormRepository(testDB)
	reviews := NewReviewGormRepository(testDB)

	b := models.Booking{PropertyID: p.ID, UserID: guest.ID, CheckIn: day(1), CheckOut: day(3), Guests: 1, Status: "completed"}
	require.NoError(t, bookings.CreateBooking(ctx, &b))

	first := models.Review{PropertyID: p.ID, UserID: guest.ID, BookingID: b.ID, Rating: 4, Comment: "Very comfortable stay"}
	require.NoError(t, reviews.CreateReview(ctx, &first))

	second := models.Review{PropertyID: p.ID, UserID: guest.ID, BookingID: b.ID, Rating: 2, Comment: "Changed my mind later"}
	err := reviews.CreateReview(ctx, &second)
	require.True(t, httperr.IsBusiness(err, "already_reviewed"))

	has, err := reviews.HasReview(ctx, b.ID)
	require.NoError(t, err)
	require.True(t, has)
}

func TestDeletePropertyKeepsBookings(t *testing.T) {
	ctx := context.Background()
	_, guest, p := seed(t)
	bookings := NewBookingGormRepository(testDB)
	props := NewPropertyGormRepository(testDB)

	b := models.Booking{PropertyID: p.ID, UserID: guest.ID, CheckIn: day(5), CheckOut: day(6), Guests: 1, Status: "completed"}
	require.NoError(t, bookings.CreateBooking(ctx, &b))

	n, err := props.CountActiveBookings(ctx, p.ID)
	require.NoError(t, err)
	require.Zero(t, n)

	require.NoError(t, props.DeleteProperty(ctx, p.ID))

	_, err = props.GetProperty(ctx, p.ID)
	require.Error(t, err)

	got, err := bookings.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Property)
	require.Equal(t, p.ID, got.Property.ID)
}
