// Package model defines domain models for the L2 migration dashboard.
package model

// StageStatus describes the progress of a single migration stage.
type StageStatus string

var (
	// StageNotStarted marks a stage the operators have not begun.
	StageNotStarted StageStatus = "NotStarted"
	// StageInProgress marks a stage that is currently running.
	StageInProgress StageStatus = "InProgress"
	// StageComplete marks a finished stage.
	StageComplete StageStatus = "Complete"
)

const (
	fallbackStageID   = "fallback"
	fallbackStageName = "Migrating L1 data"
)

// Stage is a named step of the post-cutover migration process.
type Stage struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Status      StageStatus `json:"status"`
	Description string      `json:"description,omitempty"`
}

// FallbackStage is shown when the store has not delivered any stages in time.
func FallbackStage() Stage {
	return Stage{
		ID:     fallbackStageID,
		Name:   fallbackStageName,
		Status: StageInProgress,
	}
}

// CompleteAll returns a copy of stages with every status forced to Complete.
func CompleteAll(stages []Stage) []Stage {
	if stages == nil {
		return nil
	}
	out := make([]Stage, len(stages))
	for i, s := range stages {
		s.Status = StageComplete
		out[i] = s
	}
	return out
}
