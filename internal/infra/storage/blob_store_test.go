package storage

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/fileblob"
)

func TestBlobStore_SaveProductImage(t *testing.T) {
	t.Parallel()

	bucket, err := fileblob.OpenBucket(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	store := &blobStore{
		bucket:        bucket,
		publicBaseURL: "https://cdn.example.com/images",
		logger:        slog.New(slog.DiscardHandler),
	}

	productID := uuid.New()
	url, err := store.SaveProductImage(context.Background(), productID, "image/png", []byte("fake-png"))

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/images/products/"+productID.String()+"/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	// The object is readable back through the bucket.
	key := strings.TrimPrefix(url, "https://cdn.example.com/images/")
	data, err := bucket.ReadAll(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, []byte("fake-png"), data)
}

func TestExtensionFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ".png", extensionFor("image/png"))
	assert.Equal(t, ".webp", extensionFor("image/webp"))
	assert.Equal(t, ".jpg", extensionFor("image/jpeg"))
	assert.Equal(t, ".jpg", extensionFor("application/octet-stream"))
}
