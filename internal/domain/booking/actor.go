package booking

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/VaibhaviS123/SafeStay/internal/models"
)

// ActorSet is the set of roles a caller holds relative to one booking. A
// caller that owns the property and also made the booking holds both.
type ActorSet uint8

const (
	ActorGuest ActorSet = 1 << iota
	ActorOwner
)

func (s ActorSet) Has(a ActorSet) bool {
	return s&a != 0
}

func (s ActorSet) Empty() bool {
	return s == 0
}

func (s ActorSet) String() string {
	var parts []string
	if s.Has(ActorGuest) {
		parts = append(parts, "guest")
	}
	if s.Has(ActorOwner) {
		parts = append(parts, "owner")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ",")
}

// ParseActors reads a comma separated list such as "guest,owner".
func ParseActors(s string) (ActorSet, error) {
	var set ActorSet
	for _, part := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "guest":
			set |= ActorGuest
		case "owner":
			set |= ActorOwner
		case "":
		default:
			return 0, fmt.Errorf("unknown actor %q", part)
		}
	}
	if set.Empty() {
		return 0, fmt.Errorf("no actor in %q", s)
	}
	return set, nil
}

// RolesOf derives the caller's roles on b. ownerID is the owner of the
// booked property.
func RolesOf(b *models.Booking, ownerID, callerID uuid.UUID) ActorSet {
	var set ActorSet
	if callerID == uuid.Nil {
		return set
	}
	if b.UserID == callerID {
		set |= ActorGuest
	}
	if ownerID == callerID {
		set |= ActorOwner
	}
	return set
}
