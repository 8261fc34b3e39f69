package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/l2-migration-dashboard/internal/migration/model"
	"github.com/goodnatureofminers/l2-migration-dashboard/internal/migration/store"
)

// StageFeedConfig names the store locations of one stage collection.
type StageFeedConfig struct {
	Name       string
	StagesPath string
	LivePath   string
	// FallbackTimeout enables the synthesized fallback stage when positive.
	FallbackTimeout time.Duration
}

// StageFeed keeps a stage collection and its live flag in sync with the store.
type StageFeed struct {
	client  StoreClient
	cfg     StageFeedConfig
	metrics StageFeedMetrics
	logger  *zap.Logger
}

// NewStageFeed builds a StageFeed.
func NewStageFeed(client StoreClient, cfg StageFeedConfig, metrics StageFeedMetrics, logger *zap.Logger) (*StageFeed, error) {
	if client == nil {
		return nil, errors.New("store client is required")
	}
	if metrics == nil {
		return nil, errors.New("stage feed metrics is required")
	}
	if cfg.StagesPath == "" || cfg.LivePath == "" {
		return nil, errors.New("stage and live paths are required")
	}
	return &StageFeed{
		client:  client,
		cfg:     cfg,
		metrics: metrics,
		logger:  logger.Named("stageFeed").With(zap.String("feed", cfg.Name)),
	}, nil
}

type stageUpdate func(state *model.StageFeedState)

// Run subscribes to the stages and the live flag and reports every change
// until ctx is canceled. Both subscriptions are closed before Run returns.
func (f *StageFeed) Run(ctx context.Context, obs StageObserver) error {
	ctx, cancel := context.WithCancel(ctx)
	updates := make(chan stageUpdate)
	deliver := func(u stageUpdate) {
		select {
		case updates <- u:
		case <-ctx.Done():
		}
	}

	state := model.StageFeedState{Loading: true}

	var subs []store.Subscription
	defer func() {
		cancel()
		for _, sub := range subs {
			sub.Close()
		}
	}()

	stagesSub, err := f.client.Subscribe(ctx, f.cfg.StagesPath,
		func(s store.Snapshot) { deliver(f.stagesReceived(s)) },
		func(err error) { deliver(f.stagesFailed(err)) },
	)
	if err != nil {
		f.stagesFailed(fmt.Errorf("subscribe %s: %w", f.cfg.StagesPath, err))(&state)
	} else {
		subs = append(subs, stagesSub)
	}

	liveSub, err := f.client.Subscribe(ctx, f.cfg.LivePath,
		func(s store.Snapshot) { deliver(f.liveReceived(s)) },
		func(err error) { deliver(f.liveFailed(err)) },
	)
	if err != nil {
		f.liveFailed(fmt.Errorf("subscribe %s: %w", f.cfg.LivePath, err))(&state)
	} else {
		subs = append(subs, liveSub)
	}

	obs.StagesUpdated(state.Clone())

	var fallback <-chan time.Time
	if f.cfg.FallbackTimeout > 0 {
		timer := time.NewTimer(f.cfg.FallbackTimeout)
		defer timer.Stop()
		fallback = timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-fallback:
			fallback = nil
			if !f.applyFallback(&state) {
				continue
			}
		case update := <-updates:
			update(&state)
		}
		obs.StagesUpdated(state.Clone())
	}
}

func (f *StageFeed) applyFallback(state *model.StageFeedState) bool {
	if state.Received || state.Err != nil || len(state.Stages) > 0 {
		return false
	}
	stages := []model.Stage{model.FallbackStage()}
	if state.Live {
		stages = model.CompleteAll(stages)
	}
	state.Stages = stages
	state.Fallback = true
	state.Loading = false
	f.metrics.ObserveFallback()
	f.logger.Info("no stages received in time, showing fallback stage",
		zap.Duration("timeout", f.cfg.FallbackTimeout))
	return true
}

func (f *StageFeed) stagesReceived(s store.Snapshot) stageUpdate {
	stages, skipped, err := DecodeStages(s)
	if err != nil {
		return f.stagesFailed(err)
	}
	if len(skipped) > 0 {
		f.logger.Warn("skipping malformed stages", zap.Strings("ids", skipped))
	}
	f.metrics.ObserveSnapshot(len(stages))
	return func(state *model.StageFeedState) {
		if state.Live {
			stages = model.CompleteAll(stages)
		}
		state.Stages = stages
		state.Received = true
		state.Fallback = false
		state.Loading = false
		state.Err = nil
	}
}

func (f *StageFeed) stagesFailed(err error) stageUpdate {
	f.metrics.ObserveError("stages")
	f.logger.Warn("stage subscription failed", zap.Error(err))
	return func(state *model.StageFeedState) {
		state.Err = err
		state.Loading = false
	}
}

func (f *StageFeed) liveReceived(s store.Snapshot) stageUpdate {
	live, err := DecodeLiveFlag(s)
	if err != nil {
		return f.liveFailed(err)
	}
	return func(state *model.StageFeedState) {
		state.LiveErr = nil
		if !live || state.Live {
			return
		}
		f.logger.Info("live flag raised")
		state.Live = true
		state.Stages = model.CompleteAll(state.Stages)
	}
}

func (f *StageFeed) liveFailed(err error) stageUpdate {
	f.metrics.ObserveError("live")
	f.logger.Warn("live flag subscription failed", zap.Error(err))
	return func(state *model.StageFeedState) {
		state.LiveErr = err
	}
}
