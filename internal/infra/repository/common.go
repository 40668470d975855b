package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VaibhaviS123/SafeStay/internal/domain"
	"github.com/VaibhaviS123/SafeStay/internal/models"
)

// notFound translates gorm's sentinel into the domain one so use cases never
// import gorm.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

func findUser(ctx context.Context, db *gorm.DB, id uuid.UUID) (*models.User, error) {
	var u models.User
	if err := db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func orderedImages(db *gorm.DB) *gorm.DB {
	return db.Order("display_order ASC")
}

func unscoped(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}
