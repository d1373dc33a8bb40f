package notify

import (
	"context"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"

	"intake-backend/internal/domain/entity"
	"intake-backend/internal/handler/http/requestid"
)

const (
	workerPoolTimeout   = 5 * time.Second  // Timeout for acquiring a worker slot
	notificationTimeout = 30 * time.Second // Timeout for an individual notification
)

// Service dispatches contact notifications to the configured channels.
//
// Dispatching is non-blocking: NotifyContactCreated returns immediately
// and notifications are sent in background goroutines. A channel failure
// is logged and counted, never surfaced — the caller's result must be
// determined solely by the persistence outcome.
type Service interface {
	// NotifyContactCreated dispatches a notification about a newly
	// persisted contact to all enabled channels. The contact must already
	// be stored; this method is only called after a successful write.
	NotifyContactCreated(ctx context.Context, contact *entity.Contact)

	// Shutdown waits for in-flight notifications to finish or for the
	// context to expire. Returns a non-nil error on timeout.
	Shutdown(ctx context.Context) error
}

type service struct {
	channels       []Channel
	workerPool     chan struct{} // Semaphore bounding concurrent sends
	wg             sync.WaitGroup
	shutdownCtx    context.Context
	shutdownCancel context.CancelFunc
}

// NewService creates a dispatcher over the given channels.
// maxConcurrent bounds the number of notifications in flight.
func NewService(channels []Channel, maxConcurrent int) Service {
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())
	return &service{
		channels:       channels,
		workerPool:     make(chan struct{}, maxConcurrent),
		shutdownCtx:    shutdownCtx,
		shutdownCancel: shutdownCancel,
	}
}

// NotifyContactCreated implements Service.
func (s *service) NotifyContactCreated(ctx context.Context, contact *entity.Contact) {
	if contact == nil {
		slog.Warn("notification skipped: nil contact")
		return
	}

	// Inherit the request ID from the HTTP request when present so the
	// background send can be correlated with the request that caused it.
	requestID := requestid.FromContext(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	enabled := 0
	for _, ch := range s.channels {
		if ch.IsEnabled() {
			enabled++
		}
	}
	if enabled == 0 {
		slog.Debug("no notification channels enabled",
			slog.String("request_id", requestID),
			slog.String("contact_id", contact.ID))
		return
	}

	slog.Info("dispatching contact notification",
		slog.String("request_id", requestID),
		slog.String("contact_id", contact.ID),
		slog.Int("enabled_channels", enabled))

	for _, ch := range s.channels {
		if ch.IsEnabled() {
			s.wg.Add(1)
			go s.send(requestID, ch, contact)
		}
	}
}

// send delivers to a single channel in a background goroutine.
func (s *service) send(requestID string, channel Channel, contact *entity.Contact) {
	defer s.wg.Done()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic in notification channel",
				slog.String("request_id", requestID),
				slog.String("channel", channel.Name()),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())))
		}
	}()

	// Acquire a worker slot with a timeout so a saturated pool drops the
	// notification instead of piling up goroutines.
	select {
	case s.workerPool <- struct{}{}:
		defer func() { <-s.workerPool }()
	case <-time.After(workerPoolTimeout):
		slog.Warn("notification dropped: worker pool full",
			slog.String("request_id", requestID),
			slog.String("channel", channel.Name()))
		RecordDropped(channel.Name())
		return
	}

	ctx, cancel := context.WithTimeout(s.shutdownCtx, notificationTimeout)
	defer cancel()

	start := time.Now()
	err := channel.Send(ctx, contact)
	duration := time.Since(start)

	if err != nil {
		RecordFailure(channel.Name())
		slog.Warn("channel notification failed",
			slog.String("request_id", requestID),
			slog.String("channel", channel.Name()),
			slog.String("contact_id", contact.ID),
			slog.Duration("send_duration", duration),
			slog.Any("error", err))
		return
	}

	RecordSuccess(channel.Name())
	slog.Info("channel notification sent",
		slog.String("request_id", requestID),
		slog.String("channel", channel.Name()),
		slog.String("contact_id", contact.ID),
		slog.Duration("send_duration", duration))
}

// Shutdown implements Service.
func (s *service) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.shutdownCancel()
		return nil
	case <-ctx.Done():
		s.shutdownCancel()
		return ctx.Err()
	}
}
