// Package contact provides use cases for managing contact-form
// submissions: creation with best-effort notification, wholesale update,
// idempotent deletion and listing.
package contact

import "errors"

// Sentinel errors for contact use case operations.
var (
	// ErrContactNotFound indicates that no contact matches the given ID.
	ErrContactNotFound = errors.New("contact not found")

	// ErrInvalidContactID indicates that the provided contact ID is empty
	// or malformed.
	ErrInvalidContactID = errors.New("invalid contact ID")
)
