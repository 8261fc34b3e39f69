// Package coalescer provides a rate limited latest-value delivery loop.
package coalescer

import (
	"context"
	"sync"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Coalescer hands the most recent offered item to a delivery callback.
// Items offered while a delivery is pending replace the pending one.
type Coalescer[T any] struct {
	deliver func(context.Context, T) error
	itemsCh chan T
	rl      ratelimit.Limiter
	logger  *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
	err      error
}

// New constructs a Coalescer delivering at most rps items per second.
func New[T any](logger *zap.Logger, deliver func(context.Context, T) error, rps int) *Coalescer[T] {
	return &Coalescer[T]{
		logger:  logger,
		deliver: deliver,
		itemsCh: make(chan T, 1),
		rl:      ratelimit.New(rps, ratelimit.WithoutSlack),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start begins the background delivery loop.
func (c *Coalescer[T]) Start(ctx context.Context) {
	c.wg.Add(1)
	go c.run(ctx)
}

// Stop stops the background delivery loop and waits for it to exit.
func (c *Coalescer[T]) Stop() {
	c.stopOnce.Do(func() {
		close(c.stop)
	})
	c.wg.Wait()
}

// Done is closed once the delivery loop has exited.
func (c *Coalescer[T]) Done() <-chan struct{} {
	return c.done
}

// Err returns the delivery error that ended the loop, if any. It is valid
// after Done is closed.
func (c *Coalescer[T]) Err() error {
	<-c.done
	return c.err
}

// Offer queues item for delivery without blocking, dropping any item that
// has not been delivered yet.
func (c *Coalescer[T]) Offer(item T) {
	for {
		select {
		case <-c.done:
			return
		case c.itemsCh <- item:
			return
		default:
		}
		select {
		case <-c.itemsCh:
		default:
		}
	}
}

func (c *Coalescer[T]) run(ctx context.Context) {
	defer c.wg.Done()
	defer close(c.done)

	for {
		select {
		case <-ctx.Done():
			return

		case <-c.stop:
			return

		case item := <-c.itemsCh:
			c.rl.Take()
			if err := c.deliver(ctx, item); err != nil {
				c.logger.Debug("delivery failed, stopping", zap.Error(err))
				c.err = err
				return
			}
		}
	}
}
