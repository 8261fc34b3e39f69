package transport

import (
	"sync"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/l2-migration-dashboard/internal/migration/model"
)

const (
	// ServiceChain reports whether the chain RPC endpoint is reachable.
	ServiceChain = "chain"
	// ServiceStore reports whether the progress stage feed is healthy.
	ServiceStore = "store"
)

// HealthReporter mirrors published statuses into a gRPC health server.
type HealthReporter struct {
	server *health.Server

	mu       sync.Mutex
	statuses map[string]healthpb.HealthCheckResponse_ServingStatus
}

// NewHealthReporter marks the process and every component as serving.
func NewHealthReporter(server *health.Server) *HealthReporter {
	r := &HealthReporter{
		server:   server,
		statuses: make(map[string]healthpb.HealthCheckResponse_ServingStatus),
	}
	for _, service := range []string{"", ServiceChain, ServiceStore} {
		r.set(service, true)
	}
	return r
}

// Publish updates component health from status.
func (r *HealthReporter) Publish(status model.Status) {
	r.set(ServiceChain, !status.Chain.RPCDown)
	r.set(ServiceStore, status.Progress.Error == "")
}

func (r *HealthReporter) set(service string, serving bool) {
	next := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		next = healthpb.HealthCheckResponse_SERVING
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.statuses[service]; ok && prev == next {
		return
	}
	r.statuses[service] = next
	r.server.SetServingStatus(service, next)
}
