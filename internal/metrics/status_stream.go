package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	streamClients = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "status_stream",
		Name:      "clients",
		Help:      "Number of connected websocket viewers.",
	})

	streamMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "status_stream",
		Name:      "messages_total",
		Help:      "Count of status messages written to viewers.",
	}, []string{"status"})
)

// StatusStream tracks metrics for websocket viewers.
type StatusStream struct{}

// NewStatusStream constructs a StatusStream collector.
func NewStatusStream() *StatusStream {
	return &StatusStream{}
}

// ObserveClient records a connected (+1) or disconnected (-1) viewer.
func (StatusStream) ObserveClient(delta int) {
	streamClients.Add(float64(delta))
}

// ObserveWrite records a message write outcome.
func (StatusStream) ObserveWrite(err error) {
	streamMessagesTotal.WithLabelValues(statusOf(err)).Inc()
}
