package booking

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/VaibhaviS123/SafeStay/internal/models"
)

func TestOverlaps(t *testing.T) {
	in, out := day("2025-06-01"), day("2025-06-05")

	tests := []struct {
		name     string
		in, out  string
		overlaps bool
	}{
		{"same range", "2025-06-01", "2025-06-05", true},
		{"starts inside", "2025-06-03", "2025-06-07", true},
		{"ends inside", "2025-05-28", "2025-06-02", true},
		{"contains", "2025-05-20", "2025-06-20", true},
		{"back to back after", "2025-06-05", "2025-06-08", false},
		{"back to back before", "2025-05-28", "2025-06-01", false},
		{"disjoint", "2025-07-01", "2025-07-03", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(in, out, day(tt.in), day(tt.out))
			require.Equal(t, tt.overlaps, got)
			require.Equal(t, tt.overlaps, Overlaps(day(tt.in), day(tt.out), in, out))
		})
	}
}

func TestFindConflictsIgnoresClosedBookings(t *testing.T) {
	bookings := []models.Booking{
		{Status: string(StatusPending), CheckIn: day("2025-06-01"), CheckOut: day("2025-06-03")},
		{Status: string(StatusCancelled), CheckIn: day("2025-06-02"), CheckOut: day("2025-06-04")},
		{Status: string(StatusCompleted), CheckIn: day("2025-06-02"), CheckOut: day("2025-06-04")},
		{Status: string(StatusCheckedIn), CheckIn: day("2025-06-04"), CheckOut: day("2025-06-06")},
	}

	conflicts := FindConflicts(bookings, day("2025-06-02"), day("2025-06-05"))
	require.Len(t, conflicts, 2)
	require.Equal(t, string(StatusPending), conflicts[0].Status)
	require.Equal(t, string(StatusCheckedIn), conflicts[1].Status)

	none := FindConflicts(nil, day("2025-06-02"), day("2025-06-05"))
	require.NotNil(t, none)
	require.Empty(t, none)
}

func TestParseStatus(t *testing.T) {
	st, ok := ParseStatus("  Checked_In ")
	require.True(t, ok)
	require.Equal(t, StatusCheckedIn, st)

	_, ok = ParseStatus("archived")
	require.False(t, ok)

	require.True(t, StatusConfirmed.IsActive())
	require.False(t, StatusCancelled.IsActive())
	require.True(t, StatusCompleted.IsTerminal())
	require.Equal(t, StatusPending, InitialStatus())
}

func TestParseActors(t *testing.T) {
	set, err := ParseActors("guest")
	require.NoError(t, err)
	require.Equal(t, ActorGuest, set)
	require.Equal(t, "guest", set.String())

	set, err = ParseActors("OWNER,guest")
	require.NoError(t, err)
	require.Equal(t, "guest,owner", set.String())

	_, err = ParseActors("")
	require.Error(t, err)
	_, err = ParseActors("admin")
	require.Error(t, err)
}
