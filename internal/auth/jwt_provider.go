package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/VaibhaviS123/SafeStay/internal/domain"
	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/models"
)

const MinPasswordLength = 6

// MaxPasswordLength is bcrypt's input limit in bytes.
const MaxPasswordLength = 72

func checkPassword(password string) error {
	if len(password) < MinPasswordLength {
		return httperr.Validation("password_too_short", "Password must be at least 6 characters.")
	}
	if len([]byte(password)) > MaxPasswordLength {
		return httperr.Validation("password_too_long", "Password must be at most 72 bytes.")
	}
	return nil
}

type CredentialStore interface {
	CreateCredential(ctx context.Context, c *models.Credential) error
	FindCredentialByEmail(ctx context.Context, email string) (*models.Credential, error)
	UpdatePasswordHash(ctx context.Context, userID uuid.UUID, hash string) error
	DeleteCredential(ctx context.Context, userID uuid.UUID) error
}

// JWTProvider issues HS256 bearer tokens for bcrypt-checked credentials.
type JWTProvider struct {
	store   CredentialStore
	tokens  *TokenIssuer
	revoker Revoker
	cost    int
}

func NewJWTProvider(store CredentialStore, tokens *TokenIssuer, revoker Revoker) *JWTProvider {
	return &JWTProvider{
		store:   store,
		tokens:  tokens,
		revoker: revoker,
		cost:    bcrypt.DefaultCost,
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (p *JWTProvider) SignUp(ctx context.Context, email, password string) (uuid.UUID, error) {
	email = NormalizeEmail(email)
	if err := checkPassword(password); err != nil {
		return uuid.Nil, err
	}

	if _, err := p.store.FindCredentialByEmail(ctx, email); err == nil {
		return uuid.Nil, httperr.Validation("email_already_registered", "An account with this email already exists.")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return uuid.Nil, httperr.Infra(err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return uuid.Nil, httperr.Infra(err)
	}

	cred := &models.Credential{
		UserID:       uuid.New(),
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := p.store.CreateCredential(ctx, cred); err != nil {
		if httperr.IsUniqueViolation(err) {
			return uuid.Nil, httperr.Validation("email_already_registered", "An account with this email already exists.")
		}
		return uuid.Nil, httperr.Infra(err)
	}

	return cred.UserID, nil
}

func (p *JWTProvider) SignIn(ctx context.Context, email, password string) (*Session, error) {
	cred, err := p.store.FindCredentialByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.Unauthorized(httperr.CodeUnauthenticated, "Invalid email or password.")
		}
		return nil, httperr.Infra(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return nil, httperr.Unauthorized(httperr.CodeUnauthenticated, "Invalid email or password.")
	}

	session, _, err := p.tokens.Issue(cred.UserID)
	if err != nil {
		return nil, httperr.Infra(err)
	}
	return session, nil
}

func (p *JWTProvider) CurrentUser(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, nil
	}

	ident, err := p.tokens.Parse(token)
	if err != nil {
		return nil, nil
	}

	revoked, err := p.revoker.IsRevoked(ctx, ident.TokenID)
	if err != nil {
		return nil, httperr.Infra(err)
	}
	if revoked {
		return nil, nil
	}

	return ident, nil
}

func (p *JWTProvider) SignOut(ctx context.Context, token string) error {
	ident, err := p.tokens.Parse(token)
	if err != nil {
		return nil
	}
	if err := p.revoker.Revoke(ctx, ident.TokenID, ident.ExpiresAt); err != nil {
		return httperr.Infra(err)
	}
	return nil
}

func (p *JWTProvider) UpdatePassword(ctx context.Context, token, newPassword string) error {
	ident, err := p.CurrentUser(ctx, token)
	if err != nil {
		return err
	}
	if ident == nil {
		return httperr.Unauthorized(httperr.CodeUnauthenticated, "You must be logged in.")
	}
	if err := checkPassword(newPassword); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), p.cost)
	if err != nil {
		return httperr.Infra(err)
	}
	if err := p.store.UpdatePasswordHash(ctx, ident.UserID, string(hashed)); err != nil {
		return httperr.Infra(err)
	}
	return nil
}

func (p *JWTProvider) DeleteIdentity(ctx context.Context, userID uuid.UUID) error {
	if err := p.store.DeleteCredential(ctx, userID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return httperr.Infra(err)
	}
	return nil
}

var _ Provider = (*JWTProvider)(nil)
