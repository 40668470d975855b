package account

import (
	"context"
	"errors"
	"strings"

	"github.com/VaibhaviS123/SafeStay/internal/auth"
	"github.com/VaibhaviS123/SafeStay/internal/domain"
	accountdomain "github.com/VaibhaviS123/SafeStay/internal/domain/account"
	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/models"
)

// ======================================================
// Login
// ======================================================

type LoginResult struct {
	Session *auth.Session `json:"session"`
	Role    string        `json:"role"`
	User    *models.User  `json:"user"`
}

type Login struct {
	provider auth.Provider
	repo     accountdomain.Repository
}

func NewLogin(provider auth.Provider, repo accountdomain.Repository) *Login {
	return &Login{provider: provider, repo: repo}
}

func (uc *Login) Execute(ctx context.Context, email, password string) (*LoginResult, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, httperr.Validation("credentials_required", "Please enter your email and password.")
	}

	session, err := uc.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, httperr.Infra(err)
	}

	u, err := uc.repo.GetUser(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.Unauthorized("profile_missing", "Your account has no profile.")
		}
		return nil, httperr.Infra(err)
	}

	return &LoginResult{Session: session, Role: u.Role, User: u}, nil
}

// ======================================================
// Logout
// ======================================================

type Logout struct {
	provider auth.Provider
}

func NewLogout(provider auth.Provider) *Logout {
	return &Logout{provider: provider}
}

func (uc *Logout) Execute(ctx context.Context, token string) error {
	return httperr.Infra(uc.provider.SignOut(ctx, token))
}

// ======================================================
// Password change
// ======================================================

type ChangePassword struct {
	provider auth.Provider
	repo     accountdomain.Repository
}

func NewChangePassword(provider auth.Provider, repo accountdomain.Repository) *ChangePassword {
	return &ChangePassword{provider: provider, repo: repo}
}

// Execute checks the current password by signing in with it before the new
// one is stored.
func (uc *ChangePassword) Execute(ctx context.Context, token, current, next string) error {
	ident, err := uc.provider.CurrentUser(ctx, token)
	if err != nil {
		return httperr.Infra(err)
	}
	if ident == nil {
		return httperr.Unauthorized(httperr.CodeUnauthenticated, "You must be logged in.")
	}

	u, err := uc.repo.GetUser(ctx, ident.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.Unauthorized("profile_missing", "Your account has no profile.")
		}
		return httperr.Infra(err)
	}

	if _, err := uc.provider.SignIn(ctx, u.Email, current); err != nil {
		if httperr.KindOf(err) == httperr.KindUnauthorized {
			return httperr.Validation("wrong_password", "Current password is incorrect.")
		}
		return httperr.Infra(err)
	}
	if current == next {
		return httperr.Validation("password_unchanged", "New password must be different from the current one.")
	}

	return httperr.Infra(uc.provider.UpdatePassword(ctx, token, next))
}
