// Package repository defines the persistence interfaces consumed by the
// use case layer. Concrete implementations live under internal/infra.
package repository

import (
	"context"

	"intake-backend/internal/domain/entity"
)

// NewsUpdate contains the fields submitted in a news update.
// Nil text fields are left untouched. AddImages and AddImageIDs are
// appended to the end of the stored sequences (additive merge); existing
// elements are never removed or reordered.
type NewsUpdate struct {
	Title       *string
	Content     *string
	AddImages   []string
	AddImageIDs []string
}

type NewsRepository interface {
	// Create persists a new news item and fills in the store-assigned ID.
	Create(ctx context.Context, n *entity.NewsItem) error
	// Get retrieves a news item by ID. Returns (nil, nil) if not found.
	Get(ctx context.Context, id string) (*entity.NewsItem, error)
	// Update applies the submitted fields and returns the post-update record.
	// Returns (nil, nil) if no item matches the ID.
	Update(ctx context.Context, id string, upd NewsUpdate) (*entity.NewsItem, error)
	// Delete removes a news item by ID.
	Delete(ctx context.Context, id string) error
	// List retrieves all news items ordered by date descending (newest first).
	List(ctx context.Context) ([]*entity.NewsItem, error)
	// Count returns the total number of stored news items.
	Count(ctx context.Context) (int64, error)
}
