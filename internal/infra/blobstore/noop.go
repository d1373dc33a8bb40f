package blobstore

import (
	"context"
	"errors"
	"io"
)

// ErrNotConfigured is returned by the no-op store on upload attempts.
var ErrNotConfigured = errors.New("blob store is not configured")

// NoOpStore is used when no blob store credentials are configured.
// Uploads fail with ErrNotConfigured; deletes succeed silently so that
// news deletion still works for records without images.
type NoOpStore struct{}

// NewNoOpStore creates a no-op blob store.
func NewNoOpStore() *NoOpStore {
	return &NoOpStore{}
}

func (*NoOpStore) Upload(_ context.Context, _ io.Reader, _ string) (*UploadResult, error) {
	return nil, ErrNotConfigured
}

func (*NoOpStore) Delete(_ context.Context, _ string) error {
	return nil
}
