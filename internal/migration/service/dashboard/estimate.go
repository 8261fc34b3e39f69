package dashboard

import (
	"math"
	"time"

	"github.com/goodnatureofminers/l2-migration-dashboard/internal/migration/model"
	"github.com/goodnatureofminers/l2-migration-dashboard/pkg/safe"
)

const maxDurationSeconds = uint64(math.MaxInt64 / int64(time.Second))

// NewEstimate projects the completion time of target from the current height.
// Heights past the target yield a finished estimate.
func NewEstimate(current, target, averageBlockSeconds uint64, now time.Time) model.Estimate {
	blocks := safe.Sub(target, current)
	seconds := safe.Mul(blocks, averageBlockSeconds)
	return model.Estimate{
		CurrentBlock:     current,
		TargetBlock:      target,
		BlocksRemaining:  blocks,
		SecondsRemaining: seconds,
		CompletesAt:      now.Add(time.Duration(min(seconds, maxDurationSeconds)) * time.Second),
	}
}
