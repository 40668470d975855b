package account

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/VaibhaviS123/SafeStay/internal/audit"
	"github.com/VaibhaviS123/SafeStay/internal/auth"
	"github.com/VaibhaviS123/SafeStay/internal/domain"
	accountdomain "github.com/VaibhaviS123/SafeStay/internal/domain/account"
	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/models"
	"github.com/VaibhaviS123/SafeStay/internal/validators"
)

type SelfGuard interface {
	RequireSelf(ctx context.Context, token string, userID uuid.UUID) (*auth.Identity, error)
}

type GetProfile struct {
	repo accountdomain.Repository
}

func NewGetProfile(repo accountdomain.Repository) *GetProfile {
	return &GetProfile{repo: repo}
}

func (uc *GetProfile) Execute(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	u, err := uc.repo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFound("profile_not_found", "Profile not found.")
		}
		return nil, httperr.Infra(err)
	}
	return u, nil
}

// ProfileInput holds the editable fields. Email and role are not editable.
type ProfileInput struct {
	FullName string `validate:"required,max=120"`
	Phone    string `validate:"max=20"`
	Address  string `validate:"max=255"`
	City     string `validate:"max=100"`
	Bio      string `validate:"max=2000"`
}

type UpdateProfile struct {
	guard SelfGuard
	repo  accountdomain.Repository
	audit audit.Recorder
}

func NewUpdateProfile(guard SelfGuard, repo accountdomain.Repository, audit audit.Recorder) *UpdateProfile {
	return &UpdateProfile{guard: guard, repo: repo, audit: audit}
}

func (uc *UpdateProfile) Execute(
	ctx context.Context,
	token string,
	userID uuid.UUID,
	in ProfileInput,
) (*models.User, error) {

	if _, err := uc.guard.RequireSelf(ctx, token, userID); err != nil {
		return nil, err
	}

	in.FullName = strings.TrimSpace(in.FullName)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	in.City = strings.TrimSpace(in.City)
	in.Bio = strings.TrimSpace(in.Bio)
	if err := validators.Struct(in); err != nil {
		return nil, err
	}

	u, err := uc.repo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFound("profile_not_found", "Profile not found.")
		}
		return nil, httperr.Infra(err)
	}

	u.FullName = in.FullName
	u.Phone = in.Phone
	u.Address = in.Address
	u.City = in.City
	u.Bio = in.Bio
	if err := uc.repo.UpdateProfile(ctx, u); err != nil {
		return nil, httperr.Infra(err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   "profile_updated",
		Entity:   "user",
		EntityID: &u.ID,
	})
	return u, nil
}
