package account

import (
	"context"
	"errors"
	"strings"

	"github.com/VaibhaviS123/SafeStay/internal/audit"
	"github.com/VaibhaviS123/SafeStay/internal/auth"
	accountdomain "github.com/VaibhaviS123/SafeStay/internal/domain/account"
	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/models"
	"github.com/VaibhaviS123/SafeStay/internal/validators"
)

type RegisterInput struct {
	FullName string `validate:"required,max=120"`
	Email    string `validate:"required,email,max=160"`
	Password string `validate:"required"`
	Role     string `validate:"omitempty,oneof=guest owner"`
}

type Register struct {
	provider auth.Provider
	repo     accountdomain.Repository
	audit    audit.Recorder
}

func NewRegister(provider auth.Provider, repo accountdomain.Repository, audit audit.Recorder) *Register {
	return &Register{provider: provider, repo: repo, audit: audit}
}

// Execute creates the auth identity first and then the profile row that
// shares its id. The role is fixed here for the life of the account.
func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*models.User, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = auth.NormalizeEmail(in.Email)
	in.Role = strings.ToLower(strings.TrimSpace(in.Role))
	if in.Role == "" {
		in.Role = models.RoleGuest
	}
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	userID, err := uc.provider.SignUp(ctx, in.Email, in.Password)
	if err != nil {
		return nil, httperr.Infra(err)
	}

	u := &models.User{
		ID:       userID,
		FullName: in.FullName,
		Email:    in.Email,
		Role:     in.Role,
	}
	if err := uc.repo.CreateUser(ctx, u); err != nil {
		// Without a profile the identity can never log in, so drop it.
		if derr := uc.provider.DeleteIdentity(ctx, userID); derr != nil {
			return nil, httperr.Infra(errors.Join(err, derr))
		}
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.Validation("email_already_registered", "An account with this email already exists.")
		}
		return nil, httperr.Infra(err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &u.ID,
		Metadata: map[string]string{"role": u.Role},
	})

	return u, nil
}
