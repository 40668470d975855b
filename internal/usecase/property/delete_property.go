package property

import (
	"context"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"

	"github.com/VaibhaviS123/SafeStay/internal/audit"
	propertydomain "github.com/VaibhaviS123/SafeStay/internal/domain/property"
	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/storage"
)

// DeleteProperty refuses while the property holds active bookings. Otherwise
// the listing is soft-deleted, so past bookings keep their property, and the
// stored images are removed best-effort.
type DeleteProperty struct {
	repo   propertydomain.Repository
	images storage.ImageStore
	audit  audit.Recorder
	logger log.Logger
}

func NewDeleteProperty(
	repo propertydomain.Repository,
	images storage.ImageStore,
	audit audit.Recorder,
	logger log.Logger,
) *DeleteProperty {
	return &DeleteProperty{
		repo:   repo,
		images: images,
		audit:  audit,
		logger: logger,
	}
}

func (uc *DeleteProperty) Execute(ctx context.Context, propertyID, callerID uuid.UUID) error {
	var refs []string

	err := uc.repo.WithTx(ctx, func(tx propertydomain.Repository) error {
		if _, err := tx.LockProperty(ctx, propertyID); err != nil {
			return lookupError(err)
		}

		p, err := tx.GetProperty(ctx, propertyID)
		if err != nil {
			return lookupError(err)
		}
		if p.OwnerID != callerID {
			return errNotOwner
		}

		active, err := tx.CountActiveBookings(ctx, propertyID)
		if err != nil {
			return httperr.Infra(err)
		}
		if active > 0 {
			return httperr.Validation(
				"property_has_active_bookings",
				"This property has upcoming or ongoing bookings. Cancel or complete them before deleting it.",
			)
		}

		for _, img := range p.Images {
			refs = append(refs, img.ImageRef)
		}
		if err := tx.DeleteProperty(ctx, propertyID); err != nil {
			return lookupError(err)
		}
		return nil
	})
	if err != nil {
		return httperr.Infra(err)
	}

	if err := uc.images.Remove(ctx, refs); err != nil {
		level.Warn(uc.logger).Log("msg", "image cleanup failed", "property_id", propertyID, "err", err)
	}

	uc.audit.Dispatch(propertyEvent("property_deleted", callerID, propertyID, map[string]int{
		"images": len(refs),
	}))
	return nil
}
