// Package storage persists product images in a blob bucket.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"optika/config"
	"optika/internal/domain/lifecycle"
	"optika/internal/domain/service"
	"optika/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selected through the configured URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// New opens the configured bucket and manages its lifetime through fx.
func New(params Params) (service.ObjectStore, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be configured")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// SaveProductImage stores the image under a product-scoped key and returns
// the servable URL.
func (s *blobStore) SaveProductImage(ctx context.Context, productID uuid.UUID, contentType string, data []byte) (string, error) {
	key := fmt.Sprintf("products/%s/%d%s", productID, time.Now().UnixNano(), extensionFor(contentType))

	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to write product image")
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "Product image stored",
		slog.String("productId", productID.String()),
		slog.String("key", key),
		slog.Int("bytes", len(data)),
	)

	return s.publicBaseURL + "/" + key, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}
