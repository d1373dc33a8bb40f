package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for notification monitoring
var (
	// notificationSentTotal tracks notification send results per channel
	notificationSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_sent_total",
			Help: "Total number of notifications sent",
		},
		[]string{"channel", "status"}, // status: success|failure
	)

	// notificationDroppedTotal tracks notifications dropped because the
	// worker pool was saturated
	notificationDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_dropped_total",
			Help: "Total number of notifications dropped",
		},
		[]string{"channel"},
	)
)

// RecordSuccess records a successful notification send.
func RecordSuccess(channel string) {
	notificationSentTotal.WithLabelValues(channel, "success").Inc()
}

// RecordFailure records a failed notification send.
func RecordFailure(channel string) {
	notificationSentTotal.WithLabelValues(channel, "failure").Inc()
}

// RecordDropped records a notification dropped before sending.
func RecordDropped(channel string) {
	notificationDroppedTotal.WithLabelValues(channel).Inc()
}
