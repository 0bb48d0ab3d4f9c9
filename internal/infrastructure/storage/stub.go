package storage

import (
	"context"
	"errors"
	"io"
	"time"

	catalogapp "github.com/spacatalog/backend/internal/application/catalog"
)

// StubImageStorage is a placeholder implementation of ImageStorage.
// Use this for development until a real storage backend (S3, RustFS, etc.)
// is configured. Uploaded bodies are drained and discarded.
type StubImageStorage struct {
	// BaseURL is the base URL for generating download URLs
	// Defaults to "https://storage.example.com" if not set
	BaseURL string
}

// NewStubImageStorage creates a new StubImageStorage
func NewStubImageStorage() *StubImageStorage {
	return &StubImageStorage{
		BaseURL: "https://storage.example.com",
	}
}

// Ensure StubImageStorage implements ImageStorage
var _ catalogapp.ImageStorage = (*StubImageStorage)(nil)

// PutObject drains the body and discards it
func (s *StubImageStorage) PutObject(ctx context.Context, storageKey, contentType string, body io.Reader) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	_, err := io.Copy(io.Discard, body)
	return err
}

// GenerateDownloadURL generates a stub download URL
func (s *StubImageStorage) GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, error) {
	if storageKey == "" {
		return "", errors.New("storage key is required")
	}

	expiresAt := time.Now().Add(expiresIn)
	return s.BaseURL + "/download/" + storageKey + "?expires=" + expiresAt.Format(time.RFC3339), nil
}

// DeleteObject is a no-op stub that always succeeds
func (s *StubImageStorage) DeleteObject(ctx context.Context, storageKey string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}
	return nil
}
