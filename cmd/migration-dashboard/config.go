package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/l2-migration-dashboard/internal/migration/store"
)

const (
	backendFirebase = "firebase"
	backendRedis    = "redis"
)

type options struct {
	TargetBlock         uint64        `long:"target-block" env:"MIGRATION_TARGET_BLOCK" description:"hardfork block height" default:"31056500"`
	AverageBlockSeconds uint64        `long:"avg-block-seconds" env:"MIGRATION_AVG_BLOCK_SECONDS" description:"average block time in seconds" default:"5"`
	RPCURL              string        `long:"rpc-url" env:"MIGRATION_RPC_URL" description:"chain rpc url" default:"https://forno.celo.org"`
	RPCTimeout          time.Duration `long:"rpc-timeout" env:"MIGRATION_RPC_TIMEOUT" description:"timeout of one height query" default:"10s"`
	PollInterval        time.Duration `long:"poll-interval" env:"MIGRATION_POLL_INTERVAL" description:"height poll interval" default:"5s"`

	StoreBackend     string        `long:"store-backend" env:"MIGRATION_STORE_BACKEND" description:"realtime store backend" choice:"firebase" choice:"redis" default:"firebase"`
	FirebaseURL      string        `long:"firebase-url" env:"MIGRATION_FIREBASE_URL" description:"firebase realtime database url"`
	FirebaseToken    string        `long:"firebase-token" env:"MIGRATION_FIREBASE_TOKEN" description:"firebase auth token"`
	RedisAddr        string        `long:"redis-addr" env:"MIGRATION_REDIS_ADDR" description:"redis address"`
	RedisPassword    string        `long:"redis-password" env:"MIGRATION_REDIS_PASSWORD" description:"redis password"`
	RedisDB          int           `long:"redis-db" env:"MIGRATION_REDIS_DB" description:"redis database" default:"0"`
	RedisKeyPrefix   string        `long:"redis-key-prefix" env:"MIGRATION_REDIS_KEY_PREFIX" description:"redis key prefix"`
	StoreRetryDelay  time.Duration `long:"store-retry-delay" env:"MIGRATION_STORE_RETRY_DELAY" description:"delay before reconnecting a store subscription" default:"3s"`
	ProgressPath     string        `long:"progress-path" env:"MIGRATION_PROGRESS_PATH" description:"progress stages path" default:"l2stage"`
	ProgressLivePath string        `long:"progress-live-path" env:"MIGRATION_PROGRESS_LIVE_PATH" description:"progress live flag path" default:"IsL2Live"`
	RoadmapPath      string        `long:"roadmap-path" env:"MIGRATION_ROADMAP_PATH" description:"roadmap stages path" default:"migrationStages"`
	RoadmapLivePath  string        `long:"roadmap-live-path" env:"MIGRATION_ROADMAP_LIVE_PATH" description:"roadmap live flag path" default:"celoL2Live"`
	PartnersPath     string        `long:"partners-path" env:"MIGRATION_PARTNERS_PATH" description:"partners path, empty disables the feed" default:"Day1Partners"`
	FallbackTimeout  time.Duration `long:"fallback-timeout" env:"MIGRATION_FALLBACK_TIMEOUT" description:"wait for progress stages before showing the fallback stage" default:"5s"`

	CelebrationDuration time.Duration `long:"celebration" env:"MIGRATION_CELEBRATION" description:"celebration duration" default:"10s"`
	Addr                string        `long:"addr" env:"MIGRATION_ADDR" description:"grpc health addr" default:":8000"`
	RestAddr            string        `long:"rest-addr" env:"MIGRATION_REST_ADDR" description:"http addr" default:":8001"`
	StreamRate          int           `long:"stream-rate" env:"MIGRATION_STREAM_RATE" description:"max status messages per second per viewer" default:"4"`
}

var config options

func (o options) validate() error {
	if o.TargetBlock == 0 {
		return errors.New("target block is required")
	}
	if o.AverageBlockSeconds == 0 {
		return errors.New("average block seconds must be positive")
	}
	if o.ProgressPath == "" || o.ProgressLivePath == "" {
		return errors.New("progress paths are required")
	}
	switch o.StoreBackend {
	case backendFirebase:
		if o.FirebaseURL == "" || o.FirebaseToken == "" {
			return fmt.Errorf("firebase url and token: %w", store.ErrMissingCredentials)
		}
	case backendRedis:
		if o.RedisAddr == "" {
			return fmt.Errorf("redis addr: %w", store.ErrMissingCredentials)
		}
	default:
		return fmt.Errorf("unknown store backend %q", o.StoreBackend)
	}
	return nil
}
