package property

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/VaibhaviS123/SafeStay/internal/audit"
	"github.com/VaibhaviS123/SafeStay/internal/domain"
	propertydomain "github.com/VaibhaviS123/SafeStay/internal/domain/property"
	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/models"
)

type CreateProperty struct {
	repo  propertydomain.Repository
	audit audit.Recorder
}

func NewCreateProperty(repo propertydomain.Repository, audit audit.Recorder) *CreateProperty {
	return &CreateProperty{repo: repo, audit: audit}
}

func (uc *CreateProperty) Execute(
	ctx context.Context,
	ownerID uuid.UUID,
	in PropertyInput,
) (*models.Property, error) {

	owner, err := uc.repo.GetUser(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.Unauthorized("profile_missing", "Your account has no profile.")
		}
		return nil, httperr.Infra(err)
	}
	if !owner.IsOwner() {
		return nil, httperr.Unauthorized("role_required", "Only owners can list properties.")
	}

	in = in.normalized()
	if err := in.validate(); err != nil {
		return nil, err
	}

	p := &models.Property{OwnerID: owner.ID}
	in.apply(p)
	p.Images, p.ImageURL = gallery(in.Images)

	if err := uc.repo.CreateProperty(ctx, p); err != nil {
		return nil, httperr.Infra(err)
	}

	uc.audit.Dispatch(propertyEvent("property_created", owner.ID, p.ID, map[string]any{
		"name": p.Name,
		"city": p.City,
	}))

	return p, nil
}

func propertyEvent(action string, userID, propertyID uuid.UUID, meta any) audit.Event {
	return audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   "property",
		EntityID: &propertyID,
		Metadata: meta,
	}
}
