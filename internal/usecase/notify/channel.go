// Package notify provides the best-effort notification dispatcher used
// after a contact is created. Notifications are sent in background
// goroutines; failures are logged and counted but never propagate to the
// caller, so the persistence outcome is fully decoupled from the
// notification outcome.
package notify

import (
	"context"

	"intake-backend/internal/domain/entity"
)

// Channel represents a notification delivery channel (mail, others).
//
// Thread safety: all methods must be safe for concurrent use.
// Context handling: implementations must respect cancellation and timeout.
type Channel interface {
	// Name returns the channel identifier used for logging and metrics
	// labels (lowercase, alphanumeric).
	Name() string

	// IsEnabled returns true if this channel is enabled via configuration.
	// Disabled channels are skipped during dispatching.
	IsEnabled() bool

	// Send delivers a notification about a newly created contact.
	// Returns ErrChannelDisabled when called on a disabled channel and
	// ErrInvalidContact when the contact is nil.
	Send(ctx context.Context, contact *entity.Contact) error
}
