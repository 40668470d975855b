package memory

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/VaibhaviS123/SafeStay/internal/auth"
	"github.com/VaibhaviS123/SafeStay/internal/domain"
	accountdomain "github.com/VaibhaviS123/SafeStay/internal/domain/account"
	"github.com/VaibhaviS123/SafeStay/internal/models"
)

// ErrDuplicateEmail mirrors the unique index on users.email and
// credentials.email. It carries the Postgres SQLSTATE so callers handle it
// the same way as the real violation.
var ErrDuplicateEmail = &pgconn.PgError{
	Code:           "23505",
	Message:        "duplicate key value violates unique constraint",
	ConstraintName: "idx_users_email",
}

type AccountRepository struct {
	s *Store
}

func (r *AccountRepository) CreateUser(ctx context.Context, u *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return ErrDuplicateEmail
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := r.s.now()
	u.CreatedAt = now
	u.UpdatedAt = now
	r.s.users[u.ID] = *u
	return nil
}

func (r *AccountRepository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u := r.s.userPtr(id)
	if u == nil {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (r *AccountRepository) UpdateProfile(ctx context.Context, u *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.users[u.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.FullName = u.FullName
	stored.Phone = u.Phone
	stored.Address = u.Address
	stored.City = u.City
	stored.Bio = u.Bio
	stored.UpdatedAt = r.s.now()
	r.s.users[u.ID] = stored
	*u = stored
	return nil
}

// --------------------------------------------------
// Credentials
// --------------------------------------------------

func (r *AccountRepository) CreateCredential(ctx context.Context, c *models.Credential) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, dup := r.s.credentials[c.Email]; dup {
		return ErrDuplicateEmail
	}
	now := r.s.now()
	c.CreatedAt = now
	c.UpdatedAt = now
	r.s.credentials[c.Email] = *c
	return nil
}

func (r *AccountRepository) FindCredentialByEmail(ctx context.Context, email string) (*models.Credential, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.credentials[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *AccountRepository) UpdatePasswordHash(ctx context.Context, userID uuid.UUID, hash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for email, c := range r.s.credentials {
		if c.UserID == userID {
			c.PasswordHash = hash
			c.UpdatedAt = r.s.now()
			r.s.credentials[email] = c
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *AccountRepository) DeleteCredential(ctx context.Context, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for email, c := range r.s.credentials {
		if c.UserID == userID {
			delete(r.s.credentials, email)
			return nil
		}
	}
	return domain.ErrNotFound
}

var (
	_ accountdomain.Repository = (*AccountRepository)(nil)
	_ auth.CredentialStore     = (*AccountRepository)(nil)
)
