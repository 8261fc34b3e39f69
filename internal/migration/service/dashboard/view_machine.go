package dashboard

import "github.com/goodnatureofminers/l2-migration-dashboard/internal/migration/model"

// DeriveMode computes the display mode from the three reconciled signals.
func DeriveMode(hardforkReached, live, stagesRendered bool) model.ViewMode {
	switch {
	case live:
		return model.ViewLive
	case !hardforkReached:
		return model.ViewCounting
	case stagesRendered:
		return model.ViewStagesInProgress
	default:
		return model.ViewHardforkReached
	}
}

// ViewMachine latches the hardfork and live signals and tracks the mode.
// Every method is idempotent, so replayed or reordered signals are harmless.
type ViewMachine struct {
	mode   model.ViewMode
	reason model.HardforkReason
	live   bool
}

// NewViewMachine starts in Counting.
func NewViewMachine() *ViewMachine {
	return &ViewMachine{mode: model.ViewCounting}
}

// Mode returns the current mode.
func (m *ViewMachine) Mode() model.ViewMode {
	return m.mode
}

// Reason returns the signal that ended Counting, if any.
func (m *ViewMachine) Reason() model.HardforkReason {
	return m.reason
}

// Hardfork records that the hardfork happened. Only the first reason is kept;
// it reports whether this call was the first.
func (m *ViewMachine) Hardfork(reason model.HardforkReason) bool {
	if m.reason != model.ReasonNone {
		return false
	}
	m.reason = reason
	m.mode = DeriveMode(true, m.live, false)
	return true
}

// Update applies the latest feed signals and reports whether the mode has
// just become Live. Live is terminal.
func (m *ViewMachine) Update(live, stagesRendered bool) (enteredLive bool) {
	if m.mode == model.ViewLive {
		return false
	}
	if live {
		m.live = true
		if m.reason == model.ReasonNone {
			m.reason = model.ReasonLiveFlag
		}
	}
	m.mode = DeriveMode(m.reason != model.ReasonNone, m.live, stagesRendered)
	return m.mode == model.ViewLive
}
