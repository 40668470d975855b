package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/VaibhaviS123/SafeStay/internal/auth"
	domain "github.com/VaibhaviS123/SafeStay/internal/domain/account"
	"github.com/VaibhaviS123/SafeStay/internal/models"
)

// AccountGormRepository stores profiles and, for the JWT provider, the
// credentials behind them.
type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

// --------------------------------------------------
// Profiles
// --------------------------------------------------

func (r *AccountGormRepository) CreateUser(ctx context.Context, u *models.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *AccountGormRepository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return findUser(ctx, r.db, id)
}

func (r *AccountGormRepository) UpdateProfile(ctx context.Context, u *models.User) error {
	res := r.db.WithContext(ctx).
		Model(u).
		Select("full_name", "phone", "address", "city", "bio").
		Updates(u)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound)
	}
	return nil
}

// --------------------------------------------------
// Credentials
// --------------------------------------------------

func (r *AccountGormRepository) CreateCredential(ctx context.Context, c *models.Credential) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *AccountGormRepository) FindCredentialByEmail(ctx context.Context, email string) (*models.Credential, error) {
	var c models.Credential
	if err := r.db.WithContext(ctx).First(&c, "email = ?", email).Error; err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *AccountGormRepository) UpdatePasswordHash(ctx context.Context, userID uuid.UUID, hash string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Credential{}).
		Where("user_id = ?", userID).
		Update("password_hash", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *AccountGormRepository) DeleteCredential(ctx context.Context, userID uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Credential{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound)
	}
	return nil
}

// Compile-time checks
var (
	_ domain.Repository    = (*AccountGormRepository)(nil)
	_ auth.CredentialStore = (*AccountGormRepository)(nil)
)
