package repository

import (
	"context"

	"intake-backend/internal/domain/entity"
)

// ContactUpdate contains the fields submitted in a contact update.
// Nil fields were not submitted and are left untouched; non-nil fields
// overwrite the stored value wholesale.
type ContactUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Country   *string
	Problems  *string
	About     *string
}

type ContactRepository interface {
	// Create persists a new contact and fills in the store-assigned ID.
	Create(ctx context.Context, c *entity.Contact) error
	// Update applies the submitted fields to the contact with the given ID
	// and returns the post-update record.
	// Returns (nil, nil) if no contact matches the ID.
	Update(ctx context.Context, id string, upd ContactUpdate) (*entity.Contact, error)
	// Delete removes a contact by ID. Deleting a missing ID is not an
	// error; the operation is idempotent from the caller's perspective.
	Delete(ctx context.Context, id string) error
	// List retrieves all contacts.
	List(ctx context.Context) ([]*entity.Contact, error)
	// Count returns the total number of stored contacts.
	Count(ctx context.Context) (int64, error)
}
