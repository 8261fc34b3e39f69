package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	feedSnapshotsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "stage_feed",
		Name:      "snapshots_total",
		Help:      "Count of stage snapshots applied.",
	}, []string{"feed"})

	feedStages = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "stage_feed",
		Name:      "stages",
		Help:      "Number of stages in the latest snapshot.",
	}, []string{"feed"})

	feedErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "stage_feed",
		Name:      "errors_total",
		Help:      "Count of subscription errors surfaced by the feed.",
	}, []string{"feed", "source"})

	feedFallbackTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "stage_feed",
		Name:      "fallback_total",
		Help:      "Count of synthesized fallback stages.",
	}, []string{"feed"})
)

// StageFeed tracks metrics for a single stage feed.
type StageFeed struct {
	feed string
}

// NewStageFeed constructs a StageFeed collector labelled with the feed name.
func NewStageFeed(feed string) *StageFeed {
	if feed == "" {
		feed = "unknown"
	}
	return &StageFeed{feed: feed}
}

// ObserveSnapshot records an applied stage snapshot.
func (m StageFeed) ObserveSnapshot(stages int) {
	feedSnapshotsTotal.WithLabelValues(m.feed).Inc()
	feedStages.WithLabelValues(m.feed).Set(float64(stages))
}

// ObserveError records a subscription error for the stages or live source.
func (m StageFeed) ObserveError(source string) {
	feedErrorsTotal.WithLabelValues(m.feed, source).Inc()
}

// ObserveFallback records a synthesized fallback stage.
func (m StageFeed) ObserveFallback() {
	feedFallbackTotal.WithLabelValues(m.feed).Inc()
}
