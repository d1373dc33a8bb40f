// Package notifier provides the abstraction for sending notifications
// about contact-form submissions. It defines the Notifier interface which
// allows different transports (SMTP mail, others) to be used
// interchangeably through dependency injection, plus a no-op notifier for
// when notifications are disabled.
package notifier

import (
	"context"

	"intake-backend/internal/domain/entity"
)

// Notifier sends a notification about a newly created contact.
type Notifier interface {
	// NotifyContact sends a human-readable message containing the contact
	// fields to the configured operational recipient.
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout control
	//   - contact: The contact to notify about (must not be nil)
	//
	// Returns:
	//   - error: Non-nil if the notification could not be delivered
	NotifyContact(ctx context.Context, contact *entity.Contact) error
}
