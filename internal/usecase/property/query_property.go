package property

import (
	"context"

	"github.com/go-kit/log"
	"github.com/google/uuid"

	propertydomain "github.com/VaibhaviS123/SafeStay/internal/domain/property"
	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/models"
	"github.com/VaibhaviS123/SafeStay/internal/storage"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ======================================================
// Detail
// ======================================================

type GetProperty struct {
	repo   propertydomain.Repository
	images storage.ImageStore
	logger log.Logger
}

func NewGetProperty(repo propertydomain.Repository, images storage.ImageStore, logger log.Logger) *GetProperty {
	return &GetProperty{repo: repo, images: images, logger: logger}
}

func (uc *GetProperty) Execute(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	p, err := uc.repo.GetProperty(ctx, id)
	if err != nil {
		return nil, lookupError(err)
	}
	resolveImages(ctx, uc.images, uc.logger, p)
	return p, nil
}

// ======================================================
// Search
// ======================================================

type SearchProperties struct {
	repo   propertydomain.Repository
	images storage.ImageStore
	logger log.Logger
}

func NewSearchProperties(repo propertydomain.Repository, images storage.ImageStore, logger log.Logger) *SearchProperties {
	return &SearchProperties{repo: repo, images: images, logger: logger}
}

func (uc *SearchProperties) Execute(ctx context.Context, f propertydomain.SearchFilter) ([]models.Property, error) {
	if f.PropertyType != "" && !propertydomain.IsValidType(f.PropertyType) {
		return nil, httperr.Validation("invalid_property_type", "Unknown property type.")
	}
	if f.MinGuests < 0 {
		return nil, httperr.Validation("invalid_guest_count", "Number of guests cannot be negative.")
	}
	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		return nil, httperr.Validation("invalid_price", "Maximum price cannot be negative.")
	}
	if f.Limit <= 0 {
		f.Limit = DefaultPageSize
	}
	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	props, err := uc.repo.SearchProperties(ctx, f)
	if err != nil {
		return nil, httperr.Infra(err)
	}
	for i := range props {
		resolveImages(ctx, uc.images, uc.logger, &props[i])
	}
	return props, nil
}

// ======================================================
// Owner listing
// ======================================================

type ListMyProperties struct {
	repo   propertydomain.Repository
	images storage.ImageStore
	logger log.Logger
}

func NewListMyProperties(repo propertydomain.Repository, images storage.ImageStore, logger log.Logger) *ListMyProperties {
	return &ListMyProperties{repo: repo, images: images, logger: logger}
}

func (uc *ListMyProperties) Execute(ctx context.Context, ownerID uuid.UUID) ([]models.Property, error) {
	props, err := uc.repo.ListPropertiesByOwner(ctx, ownerID)
	if err != nil {
		return nil, httperr.Infra(err)
	}
	for i := range props {
		resolveImages(ctx, uc.images, uc.logger, &props[i])
	}
	return props, nil
}
