package guard_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/VaibhaviS123/SafeStay/internal/auth"
	"github.com/VaibhaviS123/SafeStay/internal/guard"
	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/infra/memory"
	"github.com/VaibhaviS123/SafeStay/internal/models"
)

type fixture struct {
	ctx      context.Context
	repos    memory.Repos
	provider *auth.JWTProvider
	guard    *guard.Guard
}

func newFixture() *fixture {
	repos := memory.NewStore().Repos()
	provider := auth.NewJWTProvider(repos.Accounts, auth.NewTokenIssuer("secret", time.Hour), auth.NewMemoryRevoker())
	return &fixture{
		ctx:      context.Background(),
		repos:    repos,
		provider: provider,
		guard:    guard.New(provider, repos.Accounts, repos.Properties),
	}
}

// user creates an identity, with a profile when role is not empty, and
// returns its id and a live token.
func (f *fixture) user(t *testing.T, email, role string) (uuid.UUID, string) {
	t.Helper()
	id, err := f.provider.SignUp(f.ctx, email, "secret123")
	require.NoError(t, err)
	if role != "" {
		require.NoError(t, f.repos.Accounts.CreateUser(f.ctx, &models.User{
			ID: id, FullName: email, Email: email, Role: role,
		}))
	}
	session, err := f.provider.SignIn(f.ctx, email, "secret123")
	require.NoError(t, err)
	return id, session.Token
}

func TestAuthenticate(t *testing.T) {
	f := newFixture()
	id, token := f.user(t, "a@example.com", models.RoleGuest)

	ident, err := f.guard.Authenticate(f.ctx, token)
	require.NoError(t, err)
	require.Equal(t, id, ident.UserID)

	for _, bad := range []string{"", "nonsense"} {
		_, err := f.guard.Authenticate(f.ctx, bad)
		require.True(t, httperr.IsBusiness(err, httperr.CodeUnauthenticated))
	}
}

func TestRequireRole(t *testing.T) {
	f := newFixture()
	_, ownerToken := f.user(t, "owner@example.com", models.RoleOwner)
	_, guestToken := f.user(t, "guest@example.com", models.RoleGuest)
	_, orphanToken := f.user(t, "orphan@example.com", "")

	_, u, err := f.guard.RequireRole(f.ctx, ownerToken, models.RoleOwner)
	require.NoError(t, err)
	require.Equal(t, models.RoleOwner, u.Role)

	_, _, err = f.guard.RequireRole(f.ctx, guestToken, models.RoleOwner)
	require.True(t, httperr.IsBusiness(err, "role_required"))

	_, _, err = f.guard.RequireRole(f.ctx, orphanToken, models.RoleGuest)
	require.True(t, httperr.IsBusiness(err, "profile_missing"))

	_, _, err = f.guard.RequireRole(f.ctx, "", models.RoleGuest)
	require.True(t, httperr.IsBusiness(err, httperr.CodeUnauthenticated))
}

func TestRequireOwnerOf(t *testing.T) {
	f := newFixture()
	ownerID, ownerToken := f.user(t, "owner@example.com", models.RoleOwner)
	_, otherToken := f.user(t, "other@example.com", models.RoleOwner)

	p := models.Property{OwnerID: ownerID, Name: "Hut", City: "Ooty", Area: "Lake", MaxGuests: 2}
	require.NoError(t, f.repos.Properties.CreateProperty(f.ctx, &p))

	_, err := f.guard.RequireOwnerOf(f.ctx, ownerToken, p.ID)
	require.NoError(t, err)

	_, err = f.guard.RequireOwnerOf(f.ctx, otherToken, p.ID)
	require.True(t, httperr.IsBusiness(err, "not_property_owner"))
	require.Equal(t, httperr.KindUnauthorized, httperr.KindOf(err))

	_, err = f.guard.RequireOwnerOf(f.ctx, ownerToken, uuid.New())
	require.True(t, httperr.IsBusiness(err, "property_not_found"))
}

func TestRequireSelf(t *testing.T) {
	f := newFixture()
	id, token := f.user(t, "a@example.com", models.RoleGuest)
	otherID, _ := f.user(t, "b@example.com", models.RoleGuest)

	_, err := f.guard.RequireSelf(f.ctx, token, id)
	require.NoError(t, err)

	_, err = f.guard.RequireSelf(f.ctx, token, otherID)
	require.True(t, httperr.IsBusiness(err, "not_self"))
}

func TestGuardSeesSignOut(t *testing.T) {
	f := newFixture()
	_, token := f.user(t, "a@example.com", models.RoleGuest)

	require.NoError(t, f.provider.SignOut(f.ctx, token))
	_, err := f.guard.Authenticate(f.ctx, token)
	require.True(t, httperr.IsBusiness(err, httperr.CodeUnauthenticated))
}
