package notify

import (
	"context"

	"intake-backend/internal/domain/entity"
	"intake-backend/internal/infra/notifier"
)

// MailChannel adapts the infrastructure mail notifier to the Channel
// interface. When mail is disabled a NoOpNotifier is substituted so the
// Channel contract is always satisfied without nil checks.
type MailChannel struct {
	notifier notifier.Notifier
	enabled  bool
}

// NewMailChannel creates the mail channel from an already-constructed
// notifier. Pass enabled=false to register the channel in a disabled
// state (it is then skipped during dispatching).
func NewMailChannel(n notifier.Notifier, enabled bool) *MailChannel {
	if n == nil || !enabled {
		n = notifier.NewNoOpNotifier()
	}
	return &MailChannel{notifier: n, enabled: enabled}
}

// Name returns the channel identifier "mail".
func (c *MailChannel) Name() string {
	return "mail"
}

// IsEnabled reports whether mail notifications are configured.
func (c *MailChannel) IsEnabled() bool {
	return c.enabled
}

// Send delivers the contact notification via the underlying notifier.
func (c *MailChannel) Send(ctx context.Context, contact *entity.Contact) error {
	if !c.enabled {
		return ErrChannelDisabled
	}
	if contact == nil {
		return ErrInvalidContact
	}
	return c.notifier.NotifyContact(ctx, contact)
}
