package store

import (
	"context"
	"sync"
)

type subscription struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func newSubscription(ctx context.Context) (context.Context, *subscription) {
	ctx, cancel := context.WithCancel(ctx)
	return ctx, &subscription{
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// Close cancels delivery and waits for the delivery goroutine to exit.
func (s *subscription) Close() {
	s.once.Do(func() {
		s.cancel()
		<-s.done
	})
}
