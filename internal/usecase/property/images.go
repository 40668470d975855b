package property

import (
	"context"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/VaibhaviS123/SafeStay/internal/models"
	"github.com/VaibhaviS123/SafeStay/internal/storage"
)

// resolveImages fills the read-time URL of every gallery image. A reference
// that cannot be signed is logged and left without a URL.
func resolveImages(ctx context.Context, store storage.ImageStore, logger log.Logger, p *models.Property) {
	for i := range p.Images {
		url, err := store.URL(ctx, p.Images[i].ImageRef)
		if err != nil {
			level.Warn(logger).Log("msg", "image url failed", "property_id", p.ID, "ref", p.Images[i].ImageRef, "err", err)
			continue
		}
		p.Images[i].URL = url
	}

	if p.ImageURL == "" {
		return
	}
	if url, err := store.URL(ctx, p.ImageURL); err == nil {
		p.ImageURL = url
	}
}
