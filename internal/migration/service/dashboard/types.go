package dashboard

import (
	"context"
	"time"

	"github.com/goodnatureofminers/l2-migration-dashboard/internal/migration/model"
	"github.com/goodnatureofminers/l2-migration-dashboard/internal/migration/store"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	HeightSource interface {
		LatestHeight(ctx context.Context) (uint64, error)
	}
	StoreClient interface {
		Subscribe(ctx context.Context, path string, onData store.DataHandler, onError store.ErrorHandler) (store.Subscription, error)
	}
	Publisher interface {
		Publish(status model.Status)
	}

	HeightObserver interface {
		HeightUpdated(state model.HeightState)
		TargetReached(height uint64)
		RPCDown(err error)
	}
	CountdownObserver interface {
		CountdownTick(display model.CountdownDisplay)
		CountdownEnded()
	}
	StageObserver interface {
		StagesUpdated(state model.StageFeedState)
	}
	PartnerObserver interface {
		PartnersUpdated(state model.PartnerState)
	}

	HeightPollerRunner interface {
		Run(ctx context.Context, obs HeightObserver) error
	}
	CountdownRunner interface {
		Run(ctx context.Context, seconds uint64, obs CountdownObserver) error
	}
	StageFeedRunner interface {
		Run(ctx context.Context, obs StageObserver) error
	}
	PartnerFeedRunner interface {
		Run(ctx context.Context, obs PartnerObserver) error
	}

	HeightPollerMetrics interface {
		ObservePoll(err error, started time.Time)
		ObserveHeight(height uint64)
		ObserveRPCDown()
	}
	StageFeedMetrics interface {
		ObserveSnapshot(stages int)
		ObserveError(source string)
		ObserveFallback()
	}
	DashboardMetrics interface {
		ObserveMode(mode model.ViewMode)
		ObserveHardfork(reason model.HardforkReason)
		ObserveCelebration()
		ObservePublish()
	}
)
