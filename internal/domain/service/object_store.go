package service

import (
	"context"

	"github.com/google/uuid"
)

// ObjectStore persists binary blobs (product images) and returns a
// publicly servable URL.
type ObjectStore interface {
	SaveProductImage(ctx context.Context, productID uuid.UUID, contentType string, data []byte) (string, error)
}
