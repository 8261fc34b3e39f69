package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/l2-migration-dashboard/internal/clock"
)

// RedisConfig holds the connection settings of a Redis store.
type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	KeyPrefix   string
	DialTimeout time.Duration
	RetryDelay  time.Duration
}

// RedisClient reads JSON documents from Redis keys and follows their
// changes through pub/sub. Writers publish on a channel named like the key
// after every update.
type RedisClient struct {
	client     *redis.Client
	keyPrefix  string
	retryDelay time.Duration
	logger     *zap.Logger
	sleep      func(ctx context.Context, d time.Duration) error
}

// NewRedisClient builds a client for cfg. The server is pinged once and an
// unreachable server is only logged; subscriptions report and retry
// connection errors on their own.
func NewRedisClient(ctx context.Context, cfg RedisConfig, logger *zap.Logger) (*RedisClient, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis: %w", ErrMissingCredentials)
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	rdc := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
		ReadTimeout: time.Second * 20,
	})
	logger = logger.Named("redis")
	if err := rdc.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable", zap.String("addr", cfg.Addr), zap.Error(err))
	}
	return &RedisClient{
		client:     rdc,
		keyPrefix:  cfg.KeyPrefix,
		retryDelay: cfg.RetryDelay,
		logger:     logger,
		sleep:      clock.SleepWithContext,
	}, nil
}

// Close releases the connection pool.
func (c *RedisClient) Close() error {
	return c.client.Close()
}

// Subscribe delivers the value at path once the channel subscription is
// confirmed and again after every notification on it. Connection errors go
// to onError and the subscription is re-established after the retry delay.
func (c *RedisClient) Subscribe(ctx context.Context, path string, onData DataHandler, onError ErrorHandler) (Subscription, error) {
	if len(splitPath(path)) == 0 {
		return nil, fmt.Errorf("subscribe: empty path")
	}
	ctx, sub := newSubscription(ctx)
	go func() {
		defer close(sub.done)
		c.listen(ctx, path, onData, onError)
	}()
	return sub, nil
}

func (c *RedisClient) key(path string) string {
	return fmt.Sprintf("%s%s", c.keyPrefix, strings.Join(splitPath(path), "/"))
}

func (c *RedisClient) listen(ctx context.Context, path string, onData DataHandler, onError ErrorHandler) {
	logger := c.logger.With(zap.String("path", path))
	for {
		err := c.follow(ctx, path, onData, onError)
		if ctx.Err() != nil {
			return
		}
		logger.Warn("subscription failed", zap.Error(err), zap.Duration("retry_in", c.retryDelay))
		onError(err)
		if err := c.sleep(ctx, c.retryDelay); err != nil {
			return
		}
	}
}

// follow subscribes to the key channel and reloads the key on confirmation
// and on every message until the connection fails.
func (c *RedisClient) follow(ctx context.Context, path string, onData DataHandler, onError ErrorHandler) error {
	key := c.key(path)
	ps := c.client.Subscribe(ctx, key)
	stop := context.AfterFunc(ctx, func() {
		_ = ps.Close()
	})
	defer func() {
		stop()
		_ = ps.Close()
	}()

	for {
		msg, err := ps.Receive(ctx)
		if err != nil {
			return fmt.Errorf("receive %s: %w", key, err)
		}
		switch msg.(type) {
		case *redis.Subscription, *redis.Message:
			c.load(ctx, path, onData, onError)
		}
	}
}

func (c *RedisClient) load(ctx context.Context, path string, onData DataHandler, onError ErrorHandler) {
	key := c.key(path)
	value, err := c.client.Get(ctx, key).Bytes()
	if ctx.Err() != nil {
		return
	}
	switch {
	case errors.Is(err, redis.Nil):
		onData(Snapshot{Path: path})
	case err != nil:
		onError(fmt.Errorf("get %s: %w", key, err))
	case !json.Valid(value):
		onError(fmt.Errorf("get %s: value is not valid json", key))
	default:
		onData(Snapshot{Path: path, Raw: value})
	}
}
