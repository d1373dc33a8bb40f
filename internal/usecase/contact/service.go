package contact

import (
	"context"
	"fmt"

	"intake-backend/internal/domain/entity"
	"intake-backend/internal/repository"
	"intake-backend/internal/usecase/notify"
)

// CreateInput represents the input parameters for creating a contact.
// All fields are free text; none are required at the storage layer.
type CreateInput struct {
	FirstName string
	LastName  string
	Email     string
	Country   string
	Problems  string
	About     string
}

// Service provides contact management use cases. Persistence is delegated
// to the repository; the notification dispatcher is invoked after a
// successful write and can never influence the returned result.
type Service struct {
	Repo   repository.ContactRepository
	Notify notify.Service
}

// Create persists a new contact and dispatches a best-effort notification.
//
// Ordering guarantee: persist-then-notify. If the write fails the error is
// returned and no notification is attempted. Once the write succeeds the
// contact is returned regardless of what happens on the notification path.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Contact, error) {
	c := &entity.Contact{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Country:   in.Country,
		Problems:  in.Problems,
		About:     in.About,
	}

	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}

	if s.Notify != nil {
		s.Notify.NotifyContactCreated(ctx, c)
	}
	return c, nil
}

// Update replaces the submitted fields of the contact with the given ID
// and returns the post-update record.
// Returns ErrInvalidContactID on an empty ID and ErrContactNotFound when
// no record matches.
func (s *Service) Update(ctx context.Context, id string, upd repository.ContactUpdate) (*entity.Contact, error) {
	if id == "" {
		return nil, ErrInvalidContactID
	}

	c, err := s.Repo.Update(ctx, id, upd)
	if err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}
	if c == nil {
		return nil, ErrContactNotFound
	}
	return c, nil
}

// Delete removes a contact by ID. The operation is idempotent: deleting a
// missing ID is reported as success.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidContactID
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}

// List retrieves all contacts along with the total count.
func (s *Service) List(ctx context.Context) ([]*entity.Contact, int64, error) {
	contacts, err := s.Repo.List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, int64(len(contacts)), nil
}
