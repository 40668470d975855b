package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	bookingdomain "github.com/VaibhaviS123/SafeStay/internal/domain/booking"
	domain "github.com/VaibhaviS123/SafeStay/internal/domain/property"
	"github.com/VaibhaviS123/SafeStay/internal/models"
)

type PropertyGormRepository struct {
	db *gorm.DB
}

func NewPropertyGormRepository(db *gorm.DB) *PropertyGormRepository {
	return &PropertyGormRepository{db: db}
}

func (r *PropertyGormRepository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return findUser(ctx, r.db, id)
}

func (r *PropertyGormRepository) GetProperty(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	var p models.Property
	if err := r.db.WithContext(ctx).
		Preload("Images", orderedImages).
		Preload("Owner").
		First(&p, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *PropertyGormRepository) CreateProperty(ctx context.Context, p *models.Property) error {
	return r.db.WithContext(ctx).Omit("Owner").Create(p).Error
}

func (r *PropertyGormRepository) UpdateProperty(
	ctx context.Context,
	p *models.Property,
	images []models.PropertyImage,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(p).Error; err != nil {
			return err
		}
		if images == nil {
			return nil
		}

		if err := tx.Where("property_id = ?", p.ID).Delete(&models.PropertyImage{}).Error; err != nil {
			return err
		}
		for i := range images {
			images[i].PropertyID = p.ID
		}
		if len(images) > 0 {
			if err := tx.Create(&images).Error; err != nil {
				return err
			}
		}
		p.Images = images
		return nil
	})
}

// --------------------------------------------------
// Delete
// --------------------------------------------------

func (r *PropertyGormRepository) WithTx(ctx context.Context, fn func(tx domain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PropertyGormRepository{db: tx})
	})
}

func (r *PropertyGormRepository) LockProperty(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	var p models.Property
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&p, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *PropertyGormRepository) CountActiveBookings(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("property_id = ? AND status IN ?", propertyID, bookingdomain.ActiveStatusStrings()).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PropertyGormRepository) DeleteProperty(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("property_id = ?", id).Delete(&models.PropertyImage{}).Error; err != nil {
		return err
	}
	res := db.Delete(&models.Property{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound)
	}
	return nil
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *PropertyGormRepository) SearchProperties(ctx context.Context, f domain.SearchFilter) ([]models.Property, error) {
	q := r.db.WithContext(ctx).Preload("Images", orderedImages)

	if f.City != "" {
		q = q.Where("city ILIKE ?", f.City)
	}
	if f.Query != "" {
		like := "%" + f.Query + "%"
		q = q.Where("(name ILIKE ? OR location ILIKE ? OR description ILIKE ?)", like, like, like)
	}
	if f.PropertyType != "" {
		q = q.Where("property_type = ?", f.PropertyType)
	}
	if f.MinGuests > 0 {
		q = q.Where("max_guests >= ?", f.MinGuests)
	}
	if f.MaxPrice != nil {
		q = q.Where("price_per_night <= ?", *f.MaxPrice)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}

	var props []models.Property
	if err := q.Order("created_at DESC").Find(&props).Error; err != nil {
		return nil, err
	}
	return props, nil
}

func (r *PropertyGormRepository) ListPropertiesByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Property, error) {
	var props []models.Property
	if err := r.db.WithContext(ctx).
		Preload("Images", orderedImages).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&props).Error; err != nil {
		return nil, err
	}
	return props, nil
}

// Compile-time check
var _ domain.Repository = (*PropertyGormRepository)(nil)
