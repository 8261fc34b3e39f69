package model

// ViewMode is the display mode derived from chain height, stage data and the live flag.
type ViewMode string

var (
	// ViewCounting shows the countdown to the target block.
	ViewCounting ViewMode = "counting"
	// ViewHardforkReached is shown once the hardfork happened and no stage data has arrived.
	ViewHardforkReached ViewMode = "hardfork_reached"
	// ViewStagesInProgress lists the post-hardfork migration stages.
	ViewStagesInProgress ViewMode = "stages_in_progress"
	// ViewLive marks the finished migration. It is terminal.
	ViewLive ViewMode = "live"
)

// HardforkReason records which signal moved the view out of Counting.
type HardforkReason string

var (
	// ReasonNone is reported while the view is still Counting.
	ReasonNone HardforkReason = ""
	// ReasonTargetHeight means a polled height reached the target block.
	ReasonTargetHeight HardforkReason = "target_height"
	// ReasonCountdownEnd means the countdown clock reached zero.
	ReasonCountdownEnd HardforkReason = "countdown_end"
	// ReasonRPCDown means the chain endpoint failed and the RPC-down latch was set.
	ReasonRPCDown HardforkReason = "rpc_down"
	// ReasonLiveFlag means the live flag was raised while still Counting.
	ReasonLiveFlag HardforkReason = "live_flag"
)
