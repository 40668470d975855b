package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPassthrough(t *testing.T) {
	ctx := context.Background()
	var store ImageStore = Passthrough{}

	url, err := store.URL(ctx, "properties/a.jpg")
	require.NoError(t, err)
	require.Equal(t, "properties/a.jpg", url)
	require.NoError(t, store.Remove(ctx, []string{"properties/a.jpg"}))
}

func TestS3StoreURL(t *testing.T) {
	ctx := context.Background()
	store := NewS3Store(S3Config{
		Bucket:    "images",
		Region:    "us-east-1",
		Endpoint:  "http://localhost:9000",
		AccessKey: "key",
		SecretKey: "secret",
		URLTTL:    10 * time.Minute,
	})

	t.Run("absolute refs are returned unchanged", func(t *testing.T) {
		url, err := store.URL(ctx, "https://cdn.example.com/a.jpg")
		require.NoError(t, err)
		require.Equal(t, "https://cdn.example.com/a.jpg", url)
	})

	t.Run("object keys are presigned", func(t *testing.T) {
		url, err := store.URL(ctx, "properties/a.jpg")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(url, "http://localhost:9000/images/properties/a.jpg"), url)
		require.Contains(t, url, "X-Amz-Signature=")
		require.Contains(t, url, "X-Amz-Expires=600")
	})

	t.Run("nothing to remove", func(t *testing.T) {
		require.NoError(t, store.Remove(ctx, []string{"https://cdn.example.com/a.jpg", ""}))
	})
}
