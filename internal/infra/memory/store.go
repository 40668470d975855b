package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/VaibhaviS123/SafeStay/internal/models"
)

// Store keeps every table in process. Each repository view below shares one
// Store, so the same data is visible through all of them. Writes inside
// WithTx are serialized with txMu, which stands in for the row lock the
// Postgres repositories take.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	now  func() time.Time

	users       map[uuid.UUID]models.User
	credentials map[string]models.Credential

	properties    map[uuid.UUID]models.Property
	propertyOrder []uuid.UUID
	images        map[uuid.UUID][]models.PropertyImage

	bookings     map[uuid.UUID]models.Booking
	bookingOrder []uuid.UUID

	reviews     map[uuid.UUID]models.Review
	reviewOrder []uuid.UUID

	auditLogs []models.AuditLog
}

func NewStore() *Store {
	return &Store{
		now:         time.Now,
		users:       make(map[uuid.UUID]models.User),
		credentials: make(map[string]models.Credential),
		properties:  make(map[uuid.UUID]models.Property),
		images:      make(map[uuid.UUID][]models.PropertyImage),
		bookings:    make(map[uuid.UUID]models.Booking),
		reviews:     make(map[uuid.UUID]models.Review),
	}
}

// Repos bundles the repository views over one Store.
type Repos struct {
	Bookings   *BookingRepository
	Properties *PropertyRepository
	Reviews    *ReviewRepository
	Accounts   *AccountRepository
	Audit      *AuditRepository
}

func (s *Store) Repos() Repos {
	return Repos{
		Bookings:   &BookingRepository{s: s},
		Properties: &PropertyRepository{s: s},
		Reviews:    &ReviewRepository{s: s},
		Accounts:   &AccountRepository{s: s},
		Audit:      &AuditRepository{s: s},
	}
}

// --------------------------------------------------
// helpers (callers hold mu)
// --------------------------------------------------

func (s *Store) userPtr(id uuid.UUID) *models.User {
	u, ok := s.users[id]
	if !ok {
		return nil
	}
	return &u
}

// propertyCopy returns the property with its gallery, deleted or not.
func (s *Store) propertyCopy(id uuid.UUID) (models.Property, bool) {
	p, ok := s.properties[id]
	if !ok {
		return models.Property{}, false
	}
	p.Images = append([]models.PropertyImage(nil), s.images[id]...)
	p.Amenities = append([]string(nil), p.Amenities...)
	return p, true
}

func (s *Store) livePropertyCopy(id uuid.UUID) (models.Property, bool) {
	p, ok := s.propertyCopy(id)
	if !ok || p.DeletedAt.Valid {
		return models.Property{}, false
	}
	return p, true
}

func (s *Store) reviewForBooking(bookingID uuid.UUID) *models.Review {
	for _, id := range s.reviewOrder {
		r := s.reviews[id]
		if r.BookingID == bookingID {
			return &r
		}
	}
	return nil
}

// bookingView returns a booking with Property, User and Review filled in.
func (s *Store) bookingView(b models.Booking) models.Booking {
	if p, ok := s.propertyCopy(b.PropertyID); ok {
		p.Images = nil
		b.Property = &p
	}
	b.User = s.userPtr(b.UserID)
	b.Review = s.reviewForBooking(b.ID)
	return b
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
