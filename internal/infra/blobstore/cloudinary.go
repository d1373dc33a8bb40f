package blobstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"intake-backend/pkg/config"
)

// CloudinaryStore implements BlobStore against the Cloudinary upload API.
type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStore creates a blob store backed by Cloudinary.
// Returns an error if the credentials are malformed.
func NewCloudinaryStore(cfg config.CloudinaryConfig) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("create cloudinary client: %w", err)
	}
	return &CloudinaryStore{cld: cld, folder: cfg.Folder}, nil
}

// Upload stores the blob and returns its secure delivery URL and public ID.
func (s *CloudinaryStore) Upload(ctx context.Context, r io.Reader, filename string) (*UploadResult, error) {
	resp, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder: s.folder,
	})
	if err != nil {
		return nil, fmt.Errorf("upload %q: %w", filename, err)
	}
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("upload %q: %s", filename, resp.Error.Message)
	}
	if resp.SecureURL == "" {
		return nil, fmt.Errorf("upload %q: empty URL in upload response", filename)
	}

	slog.Debug("blob uploaded",
		slog.String("filename", filename),
		slog.String("public_id", resp.PublicID))

	return &UploadResult{
		URL:      resp.SecureURL,
		PublicID: resp.PublicID,
	}, nil
}

// Delete removes a blob by public ID. A "not found" result is treated as
// success so that deletion stays idempotent.
func (s *CloudinaryStore) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return errors.New("empty public ID")
	}
	resp, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("destroy %q: %w", publicID, err)
	}
	switch strings.ToLower(resp.Result) {
	case "ok", "not found":
		return nil
	default:
		return fmt.Errorf("destroy %q: unexpected result %q", publicID, resp.Result)
	}
}
