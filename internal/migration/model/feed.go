package model

// StageFeedState is the local view of one stage collection and its live flag.
type StageFeedState struct {
	Stages   []Stage
	Loading  bool
	Received bool
	Fallback bool
	Err      error
	Live     bool
	LiveErr  error
}

// Rendered reports whether the feed has stages to show, real or synthesized.
func (s StageFeedState) Rendered() bool {
	return s.Received || s.Fallback
}

// Clone returns a copy that does not share the stages slice.
func (s StageFeedState) Clone() StageFeedState {
	if s.Stages != nil {
		s.Stages = append(make([]Stage, 0, len(s.Stages)), s.Stages...)
	}
	return s
}

// PartnerState splits tracked partners by readiness.
type PartnerState struct {
	Completed []string
	Pending   []string
	Loading   bool
	Err       error
}
