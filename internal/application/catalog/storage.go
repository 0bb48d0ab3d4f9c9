package catalog

import (
	"context"
	"io"
	"time"
)

// ImageStorage abstracts the object store holding gallery blobs. Rows in
// the gallery reference blobs by storage key only.
type ImageStorage interface {
	// PutObject stores a blob under the given key
	PutObject(ctx context.Context, key, contentType string, body io.Reader) error

	// GenerateDownloadURL returns a time-limited URL for reading a blob
	GenerateDownloadURL(ctx context.Context, key string, expiry time.Duration) (string, error)

	// DeleteObject removes a blob. Deleting a missing blob is not an error.
	DeleteObject(ctx context.Context, key string) error
}
