package storage

import (
	"context"
	"strings"
)

// ImageStore resolves stored image references to fetchable URLs and removes
// the underlying objects.
type ImageStore interface {
	URL(ctx context.Context, ref string) (string, error)
	Remove(ctx context.Context, refs []string) error
}

// IsAbsolute reports whether ref is already a URL rather than an object key.
func IsAbsolute(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// Passthrough is used when no bucket is configured: references are served
// as-is and nothing is deleted.
type Passthrough struct{}

func (Passthrough) URL(_ context.Context, ref string) (string, error) {
	return ref, nil
}

func (Passthrough) Remove(context.Context, []string) error {
	return nil
}

var _ ImageStore = Passthrough{}
