package metrics

import (
	"github.com/goodnatureofminers/l2-migration-dashboard/internal/migration/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var allModes = []model.ViewMode{
	model.ViewCounting,
	model.ViewHardforkReached,
	model.ViewStagesInProgress,
	model.ViewLive,
}

var (
	viewMode = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "dashboard",
		Name:      "view_mode",
		Help:      "Current view mode, 1 for the active mode.",
	}, []string{"mode"})

	hardforkTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "dashboard",
		Name:      "hardfork_reached_total",
		Help:      "Count of hardfork transitions by triggering signal.",
	}, []string{"reason"})

	celebrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "dashboard",
		Name:      "celebrations_total",
		Help:      "Count of celebration effects fired.",
	})

	publishedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "dashboard",
		Name:      "status_published_total",
		Help:      "Count of status documents published.",
	})
)

// Dashboard tracks metrics for the view state machine.
type Dashboard struct{}

// NewDashboard constructs a Dashboard collector.
func NewDashboard() *Dashboard {
	return &Dashboard{}
}

// ObserveMode marks mode as the active view mode.
func (Dashboard) ObserveMode(mode model.ViewMode) {
	for _, m := range allModes {
		v := 0.0
		if m == mode {
			v = 1
		}
		viewMode.WithLabelValues(string(m)).Set(v)
	}
}

// ObserveHardfork records the signal that ended the countdown.
func (Dashboard) ObserveHardfork(reason model.HardforkReason) {
	hardforkTotal.WithLabelValues(string(reason)).Inc()
}

// ObserveCelebration records a fired celebration.
func (Dashboard) ObserveCelebration() {
	celebrationsTotal.Inc()
}

// ObservePublish records a published status document.
func (Dashboard) ObservePublish() {
	publishedTotal.Inc()
}
