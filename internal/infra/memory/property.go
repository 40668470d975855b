package memory

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VaibhaviS123/SafeStay/internal/domain"
	bookingdomain "github.com/VaibhaviS123/SafeStay/internal/domain/booking"
	propertydomain "github.com/VaibhaviS123/SafeStay/internal/domain/property"
	"github.com/VaibhaviS123/SafeStay/internal/models"
)

type PropertyRepository struct {
	s *Store
}

func (r *PropertyRepository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u := r.s.userPtr(id)
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (r *PropertyRepository) GetProperty(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.livePropertyCopy(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Owner = r.s.userPtr(p.OwnerID)
	return &p, nil
}

func (r *PropertyRepository) CreateProperty(ctx context.Context, p *models.Property) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := r.s.now()
	p.CreatedAt = now
	p.UpdatedAt = now

	r.s.images[p.ID] = r.s.stampImages(p.ID, p.Images)
	p.Images = append([]models.PropertyImage(nil), r.s.images[p.ID]...)

	stored := *p
	stored.Owner, stored.Images = nil, nil
	r.s.properties[p.ID] = stored
	r.s.propertyOrder = append(r.s.propertyOrder, p.ID)
	return nil
}

func (r *PropertyRepository) UpdateProperty(
	ctx context.Context,
	p *models.Property,
	images []models.PropertyImage,
) error {

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.properties[p.ID]
	if !ok || existing.DeletedAt.Valid {
		return domain.ErrNotFound
	}

	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = r.s.now()

	stored := *p
	stored.Owner, stored.Images = nil, nil
	r.s.properties[p.ID] = stored

	if images != nil {
		r.s.images[p.ID] = r.s.stampImages(p.ID, images)
		p.Images = append([]models.PropertyImage(nil), r.s.images[p.ID]...)
	}
	return nil
}

func (s *Store) stampImages(propertyID uuid.UUID, images []models.PropertyImage) []models.PropertyImage {
	out := make([]models.PropertyImage, len(images))
	for i, img := range images {
		if img.ID == uuid.Nil {
			img.ID = uuid.New()
		}
		img.PropertyID = propertyID
		img.CreatedAt = s.now()
		out[i] = img
	}
	return out
}

// --------------------------------------------------
// Delete
// --------------------------------------------------

func (r *PropertyRepository) WithTx(ctx context.Context, fn func(tx propertydomain.Repository) error) error {
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()
	return fn(r)
}

func (r *PropertyRepository) LockProperty(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	return r.GetProperty(ctx, id)
}

func (r *PropertyRepository) CountActiveBookings(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, b := range r.s.bookings {
		if b.PropertyID == propertyID && bookingdomain.Status(b.Status).IsActive() {
			n++
		}
	}
	return n, nil
}

func (r *PropertyRepository) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.properties[id]
	if !ok || p.DeletedAt.Valid {
		return domain.ErrNotFound
	}
	p.DeletedAt = gorm.DeletedAt{Time: r.s.now(), Valid: true}
	r.s.properties[id] = p
	delete(r.s.images, id)
	return nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *PropertyRepository) SearchProperties(ctx context.Context, f propertydomain.SearchFilter) ([]models.Property, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	query := strings.ToLower(f.Query)
	out := []models.Property{}
	for i := len(r.s.propertyOrder) - 1; i >= 0; i-- {
		p, ok := r.s.livePropertyCopy(r.s.propertyOrder[i])
		if !ok {
			continue
		}
		if f.City != "" && !strings.EqualFold(p.City, f.City) {
			continue
		}
		if query != "" && !containsAny(query, p.Name, p.Location, p.Description) {
			continue
		}
		if f.PropertyType != "" && p.PropertyType != f.PropertyType {
			continue
		}
		if f.MinGuests > 0 && p.MaxGuests < f.MinGuests {
			continue
		}
		if f.MaxPrice != nil && (p.PricePerNight == nil || *p.PricePerNight > *f.MaxPrice) {
			continue
		}
		out = append(out, p)
	}

	return page(out, f.Limit, f.Offset), nil
}

func (r *PropertyRepository) ListPropertiesByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Property, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []models.Property{}
	for i := len(r.s.propertyOrder) - 1; i >= 0; i-- {
		p, ok := r.s.livePropertyCopy(r.s.propertyOrder[i])
		if ok && p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func containsAny(needle string, haystacks ...string) bool {
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}

func page[T any](items []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(items) {
			return []T{}
		}
		items = items[offset:]
	}
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

var _ propertydomain.Repository = (*PropertyRepository)(nil)
