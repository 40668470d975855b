package auth

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/VaibhaviS123/SafeStay/internal/domain"
	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/models"
)

type credStore struct {
	mu    sync.Mutex
	creds map[string]models.Credential
}

func newCredStore() *credStore {
	return &credStore{creds: make(map[string]models.Credential)}
}

func (s *credStore) CreateCredential(_ context.Context, c *models.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds[c.Email] = *c
	return nil
}

func (s *credStore) FindCredentialByEmail(_ context.Context, email string) (*models.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.creds[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (s *credStore) UpdatePasswordHash(_ context.Context, userID uuid.UUID, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for email, c := range s.creds {
		if c.UserID == userID {
			c.PasswordHash = hash
			s.creds[email] = c
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *credStore) DeleteCredential(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for email, c := range s.creds {
		if c.UserID == userID {
			delete(s.creds, email)
			return nil
		}
	}
	return domain.ErrNotFound
}

func newProvider() *JWTProvider {
	p := NewJWTProvider(newCredStore(), NewTokenIssuer("secret", time.Hour), NewMemoryRevoker())
	p.cost = bcrypt.MinCost
	return p
}

// ------------------------------------------------------------
// Tokens
// ------------------------------------------------------------

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	userID := uuid.New()

	session, tokenID, err := issuer.Issue(userID)
	require.NoError(t, err)
	require.Equal(t, userID, session.UserID)

	ident, err := issuer.Parse(session.Token)
	require.NoError(t, err)
	require.Equal(t, userID, ident.UserID)
	require.Equal(t, tokenID, ident.TokenID)
	require.WithinDuration(t, session.ExpiresAt, ident.ExpiresAt, time.Second)
}

func TestTokenRejected(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	session, _, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = NewTokenIssuer("other-secret", time.Hour).Parse(session.Token)
	require.ErrorIs(t, err, ErrInvalidToken)

	issuer.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = issuer.Parse(session.Token)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.Parse("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: uuid.NewString()})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = issuer.Parse(unsigned)
	require.ErrorIs(t, err, ErrInvalidToken)
}

// ------------------------------------------------------------
// Revocation
// ------------------------------------------------------------

func TestMemoryRevoker(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewMemoryRevoker()
	r.now = func() time.Time { return now }

	require.NoError(t, r.Revoke(ctx, "a", now.Add(time.Minute)))
	require.NoError(t, r.Revoke(ctx, "past", now.Add(-time.Minute)))

	revoked, err := r.IsRevoked(ctx, "a")
	require.NoError(t, err)
	require.True(t, revoked)

	revoked, _ = r.IsRevoked(ctx, "past")
	require.False(t, revoked)

	now = now.Add(2 * time.Minute)
	revoked, _ = r.IsRevoked(ctx, "a")
	require.False(t, revoked)

	require.NoError(t, r.Revoke(ctx, "b", now.Add(time.Minute)))
	require.NotContains(t, r.revoked, "a")
}

// ------------------------------------------------------------
// Provider
// ------------------------------------------------------------

func TestProviderSignUpAndSignIn(t *testing.T) {
	ctx := context.Background()
	p := newProvider()

	id, err := p.SignUp(ctx, " Mira@Example.com ", "secret123")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	_, err = p.SignUp(ctx, "mira@example.com", "secret123")
	require.True(t, httperr.IsBusiness(err, "email_already_registered"))

	_, err = p.SignUp(ctx, "new@example.com", "12345")
	require.True(t, httperr.IsBusiness(err, "password_too_short"))

	_, err = p.SignUp(ctx, "new@example.com", strings.Repeat("x", 80))
	require.True(t, httperr.IsBusiness(err, "password_too_long"))
	require.Equal(t, httperr.KindValidation, httperr.KindOf(err))

	_, err = p.SignUp(ctx, "new@example.com", strings.Repeat("x", MaxPasswordLength))
	require.NoError(t, err)

	session, err := p.SignIn(ctx, "MIRA@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, id, session.UserID)

	_, err = p.SignIn(ctx, "mira@example.com", "wrong")
	require.True(t, httperr.IsBusiness(err, httperr.CodeUnauthenticated))

	_, err = p.SignIn(ctx, "nobody@example.com", "secret123")
	require.True(t, httperr.IsBusiness(err, httperr.CodeUnauthenticated))
}

func TestProviderSessions(t *testing.T) {
	ctx := context.Background()
	p := newProvider()

	id, err := p.SignUp(ctx, "mira@example.com", "secret123")
	require.NoError(t, err)
	session, err := p.SignIn(ctx, "mira@example.com", "secret123")
	require.NoError(t, err)

	ident, err := p.CurrentUser(ctx, session.Token)
	require.NoError(t, err)
	require.Equal(t, id, ident.UserID)

	ident, err = p.CurrentUser(ctx, "")
	require.NoError(t, err)
	require.Nil(t, ident)

	require.NoError(t, p.UpdatePassword(ctx, session.Token, "brandnew1"))
	_, err = p.SignIn(ctx, "mira@example.com", "secret123")
	require.Error(t, err)
	_, err = p.SignIn(ctx, "mira@example.com", "brandnew1")
	require.NoError(t, err)

	require.NoError(t, p.SignOut(ctx, session.Token))
	ident, err = p.CurrentUser(ctx, session.Token)
	require.NoError(t, err)
	require.Nil(t, ident)

	err = p.UpdatePassword(ctx, session.Token, "another1")
	require.True(t, httperr.IsBusiness(err, httperr.CodeUnauthenticated))

	require.NoError(t, p.SignOut(ctx, "garbage"))
}
