package dashboard

import "time"

const (
	DefaultTargetBlock         uint64 = 31_056_500
	DefaultAverageBlockSeconds uint64 = 5

	DefaultPollInterval        = 5 * time.Second
	DefaultRPCTimeout          = 10 * time.Second
	DefaultFallbackTimeout     = 5 * time.Second
	DefaultCelebrationDuration = 10 * time.Second

	countdownInterval = time.Second
	eventQueueSize    = 16
)
