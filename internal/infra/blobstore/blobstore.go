// Package blobstore provides the abstraction for the remote media host
// that stores news images. Uploads return a permanent retrievable URL plus
// the public ID needed to delete the blob later.
//
// The package includes a Cloudinary-backed implementation and a no-op
// implementation used when no credentials are configured.
package blobstore

import (
	"context"
	"io"
	"net/url"
	"strings"
)

// UploadResult is the outcome of a successful blob upload.
type UploadResult struct {
	// URL is the fully-qualified retrievable URL of the stored blob.
	URL string
	// PublicID is the store-side identifier used for deletion.
	PublicID string
}

// BlobStore abstracts the remote media host.
type BlobStore interface {
	// Upload stores the blob read from r and returns its URL and public ID.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout control
	//   - r: Blob content
	//   - filename: Original file name, used to derive the stored name
	Upload(ctx context.Context, r io.Reader, filename string) (*UploadResult, error)

	// Delete removes a blob by its public ID. Deleting an unknown ID is
	// not an error.
	Delete(ctx context.Context, publicID string) error
}

// PublicIDFromURL derives a blob public ID from a delivery URL by taking
// the substring between the final slash and the final dot of the path.
//
// This is a contract on the store's URL shape, not a general-purpose
// parser: it only holds for blobs uploaded by this application into a
// flat folder with the default naming convention. It exists solely as a
// fallback for records persisted before public IDs were stored alongside
// URLs; records written by this code carry their IDs and never hit this
// path.
func PublicIDFromURL(rawURL string) string {
	path := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" {
		path = u.Path
	}

	if i := strings.LastIndex(path, "/"); i >= 0 {
		path = path[i+1:]
	}
	if i := strings.LastIndex(path, "."); i >= 0 {
		path = path[:i]
	}
	return path
}
