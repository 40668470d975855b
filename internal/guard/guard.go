package guard

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/VaibhaviS123/SafeStay/internal/auth"
	"github.com/VaibhaviS123/SafeStay/internal/domain"
	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/models"
)

type UserFinder interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type PropertyFinder interface {
	GetProperty(ctx context.Context, id uuid.UUID) (*models.Property, error)
}

// Guard resolves the caller of a request and checks what it may touch.
// Nothing is cached between calls.
type Guard struct {
	provider   auth.Provider
	users      UserFinder
	properties PropertyFinder
}

func New(provider auth.Provider, users UserFinder, properties PropertyFinder) *Guard {
	return &Guard{
		provider:   provider,
		users:      users,
		properties: properties,
	}
}

var errNotLoggedIn = httperr.Unauthorized(httperr.CodeUnauthenticated, "You must be logged in.")

func (g *Guard) Authenticate(ctx context.Context, token string) (*auth.Identity, error) {
	ident, err := g.provider.CurrentUser(ctx, token)
	if err != nil {
		return nil, httperr.Infra(err)
	}
	if ident == nil {
		return nil, errNotLoggedIn
	}
	return ident, nil
}

// RequireRole authenticates the caller and checks the role on its users row.
func (g *Guard) RequireRole(ctx context.Context, token, role string) (*auth.Identity, *models.User, error) {
	ident, err := g.Authenticate(ctx, token)
	if err != nil {
		return nil, nil, err
	}

	user, err := g.users.GetUser(ctx, ident.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil, httperr.Unauthorized("profile_missing", "Your account has no profile.")
		}
		return nil, nil, httperr.Infra(err)
	}
	if user.Role != role {
		return nil, nil, httperr.Unauthorized("role_required", "Only "+role+"s can do this.")
	}

	return ident, user, nil
}

func (g *Guard) RequireOwnerOf(ctx context.Context, token string, propertyID uuid.UUID) (*auth.Identity, error) {
	ident, err := g.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	p, err := g.properties.GetProperty(ctx, propertyID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFound("property_not_found", "Property not found.")
		}
		return nil, httperr.Infra(err)
	}
	if p.OwnerID != ident.UserID {
		return nil, httperr.Unauthorized("not_property_owner", "You don't have permission to manage this property.")
	}

	return ident, nil
}

func (g *Guard) RequireSelf(ctx context.Context, token string, userID uuid.UUID) (*auth.Identity, error) {
	ident, err := g.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	if ident.UserID != userID {
		return nil, httperr.Unauthorized("not_self", "You can only change your own account.")
	}
	return ident, nil
}
