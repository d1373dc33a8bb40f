// Package news provides use cases for managing news items: creation and
// update with image upload to the blob store, listing newest-first, and
// deletion with a cascading best-effort blob cleanup.
package news

import "errors"

// Sentinel errors for news use case operations.
var (
	// ErrNewsNotFound indicates that no news item matches the given ID.
	ErrNewsNotFound = errors.New("news item not found")

	// ErrInvalidNewsID indicates that the provided news ID is empty or
	// malformed.
	ErrInvalidNewsID = errors.New("invalid news ID")

	// ErrTooManyImages indicates that more images were attached than the
	// per-request limit allows.
	ErrTooManyImages = errors.New("too many images: at most 5 images are allowed per request")
)
