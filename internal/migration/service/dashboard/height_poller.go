package dashboard

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/l2-migration-dashboard/internal/clock"
	"github.com/goodnatureofminers/l2-migration-dashboard/internal/migration/model"
)

// HeightPoller queries the chain tip at a fixed cadence and keeps the sticky
// RPC-down latch.
type HeightPoller struct {
	source   HeightSource
	target   uint64
	interval time.Duration
	timeout  time.Duration
	metrics  HeightPollerMetrics
	logger   *zap.Logger
	now      func() time.Time

	state          model.HeightState
	targetReported bool
}

// NewHeightPoller builds a HeightPoller. Zero durations fall back to defaults.
func NewHeightPoller(
	source HeightSource,
	target uint64,
	interval time.Duration,
	timeout time.Duration,
	metrics HeightPollerMetrics,
	logger *zap.Logger,
) (*HeightPoller, error) {
	if source == nil {
		return nil, errors.New("height source is required")
	}
	if metrics == nil {
		return nil, errors.New("height poller metrics is required")
	}
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if timeout <= 0 {
		timeout = DefaultRPCTimeout
	}
	return &HeightPoller{
		source:   source,
		target:   target,
		interval: interval,
		timeout:  timeout,
		metrics:  metrics,
		logger:   logger.Named("heightPoller"),
		now:      time.Now,
		state:    model.HeightState{Loading: true},
	}, nil
}

// Run polls immediately and then once per interval until ctx is canceled.
func (p *HeightPoller) Run(ctx context.Context, obs HeightObserver) error {
	obs.HeightUpdated(p.state)
	return clock.Every(ctx, p.interval, func(ctx context.Context) {
		p.poll(ctx, obs)
	})
}

func (p *HeightPoller) poll(ctx context.Context, obs HeightObserver) {
	queryCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	started := time.Now()
	height, err := p.source.LatestHeight(queryCtx)
	if ctx.Err() != nil {
		return
	}
	p.metrics.ObservePoll(err, started)

	p.state.Loading = false
	p.state.UpdatedAt = p.now()
	if err != nil {
		p.state.Err = err
		if p.state.RPCDown {
			p.logger.Debug("height query failed", zap.Error(err))
			obs.HeightUpdated(p.state)
			return
		}
		p.state.RPCDown = true
		p.metrics.ObserveRPCDown()
		p.logger.Warn("rpc endpoint unreachable", zap.Error(err))
		obs.HeightUpdated(p.state)
		obs.RPCDown(err)
		return
	}

	firstSuccess := !p.state.Known
	p.state.Height = height
	p.state.Known = true
	p.state.Err = nil
	p.metrics.ObserveHeight(height)
	obs.HeightUpdated(p.state)

	if firstSuccess && height >= p.target && !p.targetReported {
		p.targetReported = true
		p.logger.Info("target block already reached",
			zap.Uint64("height", height),
			zap.Uint64("target", p.target),
		)
		obs.TargetReached(height)
	}
}
