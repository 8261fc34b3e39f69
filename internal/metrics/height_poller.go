package metrics

import (
	"time"

	"github.com/goodnatureofminers/l2-migration-dashboard/internal/migration/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pollTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "height_poller",
		Name:      "polls_total",
		Help:      "Count of chain height polls.",
	}, []string{"chain", "status"})

	pollDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "height_poller",
		Name:      "poll_duration_seconds",
		Help:      "Duration of chain height polls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"chain", "status"})

	latestHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "height_poller",
		Name:      "latest_height",
		Help:      "Latest block height reported by the RPC endpoint.",
	}, []string{"chain"})

	rpcDown = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "height_poller",
		Name:      "rpc_down",
		Help:      "Set to 1 once a height poll has failed.",
	}, []string{"chain"})
)

// HeightPoller tracks metrics for the chain height poller.
type HeightPoller struct {
	chain model.Chain
}

// NewHeightPoller constructs a HeightPoller with defaults.
func NewHeightPoller(chain model.Chain) *HeightPoller {
	if chain == "" {
		chain = "unknown"
	}
	return &HeightPoller{chain: chain}
}

// ObservePoll records a poll outcome and duration.
func (m HeightPoller) ObservePoll(err error, started time.Time) {
	status := statusOf(err)
	pollTotal.WithLabelValues(string(m.chain), status).Inc()
	pollDuration.WithLabelValues(string(m.chain), status).Observe(time.Since(started).Seconds())
}

// ObserveHeight records the latest known height.
func (m HeightPoller) ObserveHeight(height uint64) {
	latestHeight.WithLabelValues(string(m.chain)).Set(float64(height))
}

// ObserveRPCDown records that the RPC-down latch was set.
func (m HeightPoller) ObserveRPCDown() {
	rpcDown.WithLabelValues(string(m.chain)).Set(1)
}
