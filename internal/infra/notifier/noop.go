package notifier

import (
	"context"
	"log/slog"

	"intake-backend/internal/domain/entity"
)

// NoOpNotifier is used when notifications are disabled. It logs at debug
// level and always succeeds.
type NoOpNotifier struct{}

// NewNoOpNotifier creates a notifier that does nothing.
func NewNoOpNotifier() *NoOpNotifier {
	return &NoOpNotifier{}
}

func (*NoOpNotifier) NotifyContact(_ context.Context, contact *entity.Contact) error {
	if contact != nil {
		slog.Debug("notification skipped (notifier disabled)",
			slog.String("contact_id", contact.ID))
	}
	return nil
}
