package booking

import "strings"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCheckedIn Status = "checked_in"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var allStatuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusCheckedIn,
	StatusCompleted,
	StatusCancelled,
}

// AllStatuses returns the closed status domain.
func AllStatuses() []Status {
	out := make([]Status, len(allStatuses))
	copy(out, allStatuses)
	return out
}

// ActiveStatuses are the statuses that hold a property's dates.
func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusCheckedIn}
}

func ActiveStatusStrings() []string {
	active := ActiveStatuses()
	out := make([]string, len(active))
	for i, s := range active {
		out[i] = string(s)
	}
	return out
}

// ParseStatus accepts surrounding whitespace and any letter case.
func ParseStatus(s string) (Status, bool) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range allStatuses {
		if st == known {
			return st, true
		}
	}
	return "", false
}

func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCheckedIn
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s Status) String() string {
	return string(s)
}

// InitialStatus is the status every new booking starts in.
func InitialStatus() Status {
	return StatusPending
}
