package store

import (
	"context"
	"sync"
)

// ObservedClient decorates a Client with subscription metrics.
type ObservedClient struct {
	client  Client
	metrics Metrics
}

// NewObservedClient wraps client so every subscription reports to metrics.
func NewObservedClient(client Client, metrics Metrics) *ObservedClient {
	return &ObservedClient{
		client:  client,
		metrics: metrics,
	}
}

// Subscribe opens an instrumented subscription.
func (c *ObservedClient) Subscribe(ctx context.Context, path string, onData DataHandler, onError ErrorHandler) (Subscription, error) {
	sub, err := c.client.Subscribe(ctx, path,
		func(s Snapshot) {
			c.metrics.ObserveSnapshot(path, s.Exists())
			onData(s)
		},
		func(err error) {
			c.metrics.ObserveError(path)
			onError(err)
		},
	)
	if err != nil {
		c.metrics.ObserveError(path)
		return nil, err
	}
	c.metrics.ObserveSubscribed(1)
	return &observedSubscription{Subscription: sub, metrics: c.metrics}, nil
}

type observedSubscription struct {
	Subscription
	metrics Metrics
	once    sync.Once
}

func (s *observedSubscription) Close() {
	s.Subscription.Close()
	s.once.Do(func() {
		s.metrics.ObserveSubscribed(-1)
	})
}
