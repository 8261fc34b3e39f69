// Package dashboard reconciles chain height, the countdown clock and the
// realtime stage feeds into the status shown to viewers.
package dashboard

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/l2-migration-dashboard/internal/migration/model"
)

// Config holds the reconciliation parameters.
type Config struct {
	TargetBlock         uint64
	AverageBlockSeconds uint64
	CelebrationDuration time.Duration
}

// Components are the signal sources reconciled by the dashboard. Roadmap and
// Partners are optional.
type Components struct {
	Poller    HeightPollerRunner
	Countdown CountdownRunner
	Progress  StageFeedRunner
	Roadmap   StageFeedRunner
	Partners  PartnerFeedRunner
}

// Dashboard owns all view state. Components report through observers whose
// calls are queued and applied on a single loop goroutine.
type Dashboard struct {
	cfg        Config
	components Components
	metrics    DashboardMetrics
	publishers []Publisher
	logger     *zap.Logger
	now        func() time.Time

	events chan func()

	group  *errgroup.Group
	groupC context.Context

	machine          *ViewMachine
	celebration      *Celebration
	celebrationTimer *time.Timer
	height           model.HeightState
	estimate         *model.Estimate
	countdown        *model.CountdownDisplay
	countdownSeeded  bool
	countdownCancel  context.CancelFunc
	progress         model.StageFeedState
	roadmap          model.StageFeedState
	partners         model.PartnerState
}

// NewDashboard builds a Dashboard publishing every status change to publishers.
func NewDashboard(
	cfg Config,
	components Components,
	metrics DashboardMetrics,
	logger *zap.Logger,
	publishers ...Publisher,
) (*Dashboard, error) {
	if components.Poller == nil {
		return nil, errors.New("height poller is required")
	}
	if components.Countdown == nil {
		return nil, errors.New("countdown is required")
	}
	if components.Progress == nil {
		return nil, errors.New("progress feed is required")
	}
	if metrics == nil {
		return nil, errors.New("dashboard metrics is required")
	}
	if cfg.AverageBlockSeconds == 0 {
		cfg.AverageBlockSeconds = DefaultAverageBlockSeconds
	}
	return &Dashboard{
		cfg:         cfg,
		components:  components,
		metrics:     metrics,
		publishers:  publishers,
		logger:      logger.Named("dashboard"),
		now:         time.Now,
		events:      make(chan func(), eventQueueSize),
		machine:     NewViewMachine(),
		celebration: NewCelebration(cfg.CelebrationDuration),
		height:      model.HeightState{Loading: true},
		progress:    model.StageFeedState{Loading: true},
		roadmap:     model.StageFeedState{Loading: true},
		partners:    model.PartnerState{Loading: true},
	}, nil
}

// Run starts every component and the reconciliation loop. It returns once all
// of them have stopped; cancellation of ctx is reported as ctx.Err().
// Run must be called at most once.
func (d *Dashboard) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	d.group, d.groupC = g, gctx
	in := &inbox{d: d, events: d.events, done: gctx.Done()}

	g.Go(func() error {
		return d.components.Poller.Run(gctx, in)
	})
	g.Go(func() error {
		return d.components.Progress.Run(gctx, stageSink{inbox: in, apply: func(s model.StageFeedState) {
			d.progress = s
		}})
	})
	if d.components.Roadmap != nil {
		g.Go(func() error {
			return d.components.Roadmap.Run(gctx, stageSink{inbox: in, apply: func(s model.StageFeedState) {
				d.roadmap = s
			}})
		})
	} else {
		d.roadmap.Loading = false
	}
	if d.components.Partners != nil {
		g.Go(func() error {
			return d.components.Partners.Run(gctx, partnerSink{inbox: in, apply: func(s model.PartnerState) {
				d.partners = s
			}})
		})
	} else {
		d.partners.Loading = false
	}
	g.Go(func() error {
		return d.loop(gctx, in)
	})

	err := g.Wait()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func (d *Dashboard) loop(ctx context.Context, in *inbox) error {
	defer d.stopCountdown()
	defer func() {
		if d.celebrationTimer != nil {
			d.celebrationTimer.Stop()
		}
	}()

	d.logger.Info("dashboard started",
		zap.Uint64("target_block", d.cfg.TargetBlock),
		zap.Uint64("average_block_seconds", d.cfg.AverageBlockSeconds),
	)
	d.reconcile(ctx, in)
	for {
		var celebrationEnded <-chan time.Time
		if d.celebrationTimer != nil {
			celebrationEnded = d.celebrationTimer.C
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case apply := <-d.events:
			apply()
		case <-celebrationEnded:
			d.celebrationTimer = nil
			d.logger.Info("celebration finished")
		}
		d.reconcile(ctx, in)
	}
}

// reconcile derives the mode from the current state and publishes it.
func (d *Dashboard) reconcile(ctx context.Context, in *inbox) {
	if d.height.Known && d.height.Height >= d.cfg.TargetBlock {
		d.hardfork(model.ReasonTargetHeight)
	}
	if d.height.RPCDown {
		d.hardfork(model.ReasonRPCDown)
	}
	if d.progress.Live {
		d.hardfork(model.ReasonLiveFlag)
	}
	if d.height.Known && !d.countdownSeeded {
		d.seedCountdown(ctx, in)
	}

	if d.machine.Update(d.progress.Live, d.progress.Rendered()) {
		d.logger.Info("network is live")
		now := d.now()
		if d.celebration.Trigger(now) {
			d.metrics.ObserveCelebration()
			d.celebrationTimer = time.NewTimer(d.celebration.Duration())
		}
	}
	if d.machine.Mode() != model.ViewCounting {
		d.stopCountdown()
	}
	d.metrics.ObserveMode(d.machine.Mode())
	d.publish()
}

func (d *Dashboard) hardfork(reason model.HardforkReason) {
	if !d.machine.Hardfork(reason) {
		return
	}
	d.metrics.ObserveHardfork(reason)
	d.logger.Info("hardfork reached", zap.String("reason", string(reason)))
	d.stopCountdown()
}

// seedCountdown starts the display clock from the first known height. It
// runs once per process; later polls only refresh the estimate.
func (d *Dashboard) seedCountdown(ctx context.Context, in *inbox) {
	d.countdownSeeded = true
	estimate := d.estimateFrom(d.height.Height)
	if d.machine.Mode() != model.ViewCounting {
		return
	}
	if estimate.Done() {
		d.countdownEnded()
		return
	}
	d.logger.Info("starting countdown",
		zap.Uint64("height", estimate.CurrentBlock),
		zap.Uint64("seconds_remaining", estimate.SecondsRemaining),
		zap.Time("completes_at", estimate.CompletesAt),
	)

	cctx, cancel := context.WithCancel(ctx)
	d.countdownCancel = cancel
	seconds := estimate.SecondsRemaining
	d.group.Go(func() error {
		err := d.components.Countdown.Run(cctx, seconds, in)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
}

func (d *Dashboard) estimateFrom(height uint64) model.Estimate {
	estimate := NewEstimate(height, d.cfg.TargetBlock, d.cfg.AverageBlockSeconds, d.now())
	d.estimate = &estimate
	return estimate
}

func (d *Dashboard) stopCountdown() {
	if d.countdownCancel != nil {
		d.countdownCancel()
		d.countdownCancel = nil
	}
	d.countdown = nil
}

func (d *Dashboard) publish() {
	status := d.status()
	for _, p := range d.publishers {
		p.Publish(status)
	}
	d.metrics.ObservePublish()
}

func (d *Dashboard) status() model.Status {
	now := d.now()
	status := model.Status{
		Mode:           d.machine.Mode(),
		HardforkReason: d.machine.Reason(),
		TargetBlock:    d.cfg.TargetBlock,
		Chain:          model.NewChainStatus(d.height),
		Progress:       model.NewStageList(d.progress.Clone()),
		Roadmap:        model.NewStageList(d.roadmap.Clone()),
		Partners:       model.NewPartnerList(clonePartnerState(d.partners)),
		Live:           d.progress.Live,
		Celebrating:    d.celebration.Active(now),
		UpdatedAt:      now,
	}
	if d.estimate != nil {
		estimate := *d.estimate
		status.Estimate = &estimate
	}
	if d.countdown != nil && status.Mode == model.ViewCounting {
		display := *d.countdown
		status.Countdown = &display
	}
	return status
}

func (d *Dashboard) heightUpdated(s model.HeightState) {
	d.height = s
	if s.Known && d.countdownSeeded {
		d.estimateFrom(s.Height)
	}
}

func (d *Dashboard) countdownTick(display model.CountdownDisplay) {
	if d.countdownCancel == nil {
		return
	}
	d.countdown = &display
}

func (d *Dashboard) countdownEnded() {
	d.hardfork(model.ReasonCountdownEnd)
}
