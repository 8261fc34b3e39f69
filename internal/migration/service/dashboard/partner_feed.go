package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/l2-migration-dashboard/internal/migration/model"
	"github.com/goodnatureofminers/l2-migration-dashboard/internal/migration/store"
)

// PartnerFeed tracks which ecosystem partners are ready.
type PartnerFeed struct {
	client StoreClient
	path   string
	logger *zap.Logger
}

// NewPartnerFeed builds a PartnerFeed over the collection at path.
func NewPartnerFeed(client StoreClient, path string, logger *zap.Logger) (*PartnerFeed, error) {
	if client == nil {
		return nil, errors.New("store client is required")
	}
	if path == "" {
		return nil, errors.New("partner path is required")
	}
	return &PartnerFeed{
		client: client,
		path:   path,
		logger: logger.Named("partnerFeed"),
	}, nil
}

// Run reports the partner lists after every change until ctx is canceled.
func (f *PartnerFeed) Run(ctx context.Context, obs PartnerObserver) error {
	obs.PartnersUpdated(model.PartnerState{Loading: true})

	var state model.PartnerState
	sub, err := f.client.Subscribe(ctx, f.path,
		func(s store.Snapshot) {
			completed, pending, err := decodePartners(s)
			if err != nil {
				f.logger.Warn("decode partners failed", zap.Error(err))
				state.Err = err
			} else {
				state = model.PartnerState{Completed: completed, Pending: pending}
			}
			obs.PartnersUpdated(clonePartnerState(state))
		},
		func(err error) {
			f.logger.Warn("partner subscription failed", zap.Error(err))
			state.Err = err
			state.Loading = false
			obs.PartnersUpdated(clonePartnerState(state))
		},
	)
	if err != nil {
		obs.PartnersUpdated(model.PartnerState{Err: fmt.Errorf("subscribe %s: %w", f.path, err)})
		<-ctx.Done()
		return ctx.Err()
	}
	defer sub.Close()

	<-ctx.Done()
	return ctx.Err()
}

func clonePartnerState(s model.PartnerState) model.PartnerState {
	s.Completed = append([]string(nil), s.Completed...)
	s.Pending = append([]string(nil), s.Pending...)
	return s
}

func decodePartners(s store.Snapshot) (completed, pending []string, err error) {
	children, err := s.Children()
	if err != nil {
		return nil, nil, err
	}
	completed, pending = []string{}, []string{}
	for _, child := range children {
		var partner struct {
			Name   string `json:"name"`
			Status any    `json:"status"`
		}
		if err := child.Value.Decode(&partner); err != nil {
			return nil, nil, fmt.Errorf("decode partner %s: %w", child.Key, err)
		}
		name := partner.Name
		if name == "" {
			name = child.Key
		}
		if partner.Status == true {
			completed = append(completed, name)
		} else {
			pending = append(pending, name)
		}
	}
	sort.Strings(completed)
	sort.Strings(pending)
	return completed, pending, nil
}
