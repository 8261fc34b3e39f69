package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	storeSnapshotsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "store_client",
		Name:      "snapshots_total",
		Help:      "Count of snapshots delivered by the realtime store.",
	}, []string{"backend", "path", "exists"})

	storeErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "store_client",
		Name:      "errors_total",
		Help:      "Count of subscription errors reported by the realtime store.",
	}, []string{"backend", "path"})

	storeSubscriptions = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "store_client",
		Name:      "subscriptions",
		Help:      "Number of open realtime store subscriptions.",
	}, []string{"backend"})
)

// StoreClient tracks metrics for realtime store subscriptions.
type StoreClient struct {
	backend string
}

// NewStoreClient constructs a StoreClient collector for a backend.
func NewStoreClient(backend string) *StoreClient {
	if backend == "" {
		backend = "unknown"
	}
	return &StoreClient{backend: backend}
}

// ObserveSnapshot records a delivered snapshot.
func (m StoreClient) ObserveSnapshot(path string, exists bool) {
	label := "false"
	if exists {
		label = "true"
	}
	storeSnapshotsTotal.WithLabelValues(m.backend, path, label).Inc()
}

// ObserveError records a subscription error.
func (m StoreClient) ObserveError(path string) {
	storeErrorsTotal.WithLabelValues(m.backend, path).Inc()
}

// ObserveSubscribed records an opened (+1) or closed (-1) subscription.
func (m StoreClient) ObserveSubscribed(delta int) {
	storeSubscriptions.WithLabelValues(m.backend).Add(float64(delta))
}
