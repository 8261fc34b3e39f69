package model

import "time"

// Status is the document served to dashboard viewers.
type Status struct {
	Mode           ViewMode          `json:"mode"`
	HardforkReason HardforkReason    `json:"hardfork_reason,omitempty"`
	TargetBlock    uint64            `json:"target_block"`
	Chain          ChainStatus       `json:"chain"`
	Estimate       *Estimate         `json:"estimate,omitempty"`
	Countdown      *CountdownDisplay `json:"countdown,omitempty"`
	Progress       StageList         `json:"progress"`
	Roadmap        StageList         `json:"roadmap"`
	Partners       PartnerList       `json:"partners"`
	Live           bool              `json:"live"`
	Celebrating    bool              `json:"celebrating"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// ChainStatus mirrors the poller state.
type ChainStatus struct {
	Height  *uint64 `json:"height,omitempty"`
	Loading bool    `json:"loading"`
	Error   string  `json:"error,omitempty"`
	RPCDown bool    `json:"rpc_down"`
}

// StageList mirrors a stage feed.
type StageList struct {
	Stages   []Stage `json:"stages"`
	Loading  bool    `json:"loading"`
	Fallback bool    `json:"fallback,omitempty"`
	Error    string  `json:"error,omitempty"`
}

// PartnerList mirrors the partner feed.
type PartnerList struct {
	Completed []string `json:"completed"`
	Pending   []string `json:"pending"`
	Loading   bool     `json:"loading"`
	Error     string   `json:"error,omitempty"`
}

// NewChainStatus converts poller state for viewers.
func NewChainStatus(s HeightState) ChainStatus {
	out := ChainStatus{
		Loading: s.Loading,
		Error:   errString(s.Err),
		RPCDown: s.RPCDown,
	}
	if s.Known {
		h := s.Height
		out.Height = &h
	}
	return out
}

// NewStageList converts feed state for viewers.
func NewStageList(s StageFeedState) StageList {
	stages := s.Stages
	if stages == nil {
		stages = []Stage{}
	}
	return StageList{
		Stages:   stages,
		Loading:  s.Loading,
		Fallback: s.Fallback,
		Error:    errString(s.Err),
	}
}

// NewPartnerList converts partner state for viewers.
func NewPartnerList(s PartnerState) PartnerList {
	out := PartnerList{
		Completed: s.Completed,
		Pending:   s.Pending,
		Loading:   s.Loading,
		Error:     errString(s.Err),
	}
	if out.Completed == nil {
		out.Completed = []string{}
	}
	if out.Pending == nil {
		out.Pending = []string{}
	}
	return out
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
