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

type UpdateProperty struct {
	repo  propertydomain.Repository
	audit audit.Recorder
}

func NewUpdateProperty(repo propertydomain.Repository, audit audit.Recorder) *UpdateProperty {
	return &UpdateProperty{repo: repo, audit: audit}
}

func (uc *UpdateProperty) Execute(
	ctx context.Context,
	propertyID uuid.UUID,
	callerID uuid.UUID,
	in PropertyInput,
) (*models.Property, error) {

	p, err := uc.repo.GetProperty(ctx, propertyID)
	if err != nil {
		return nil, lookupError(err)
	}
	if p.OwnerID != callerID {
		return nil, errNotOwner
	}

	in = in.normalized()
	if err := in.validate(); err != nil {
		return nil, err
	}

	in.apply(p)
	p.Owner = nil

	var images []models.PropertyImage
	if in.Images != nil {
		images, p.ImageURL = gallery(in.Images)
	}

	if err := uc.repo.UpdateProperty(ctx, p, images); err != nil {
		return nil, lookupError(err)
	}

	uc.audit.Dispatch(propertyEvent("property_updated", callerID, p.ID, nil))
	return p, nil
}

func lookupError(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.NotFound("property_not_found", "Property not found.")
	}
	return httperr.Infra(err)
}
