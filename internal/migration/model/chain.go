package model

import (
	"fmt"
	"time"
)

// HeightState is the latest outcome of the chain height poller.
type HeightState struct {
	Height    uint64
	Known     bool
	Loading   bool
	Err       error
	RPCDown   bool
	UpdatedAt time.Time
}

// Estimate projects when the target block will be produced.
type Estimate struct {
	CurrentBlock     uint64    `json:"current_block"`
	TargetBlock      uint64    `json:"target_block"`
	BlocksRemaining  uint64    `json:"blocks_remaining"`
	SecondsRemaining uint64    `json:"seconds_remaining"`
	CompletesAt      time.Time `json:"completes_at"`
}

// Done reports whether the target has already been reached.
func (e Estimate) Done() bool {
	return e.SecondsRemaining == 0
}

// CountdownDisplay is a single frame of the countdown clock.
type CountdownDisplay struct {
	Remaining uint64 `json:"remaining"`
	Hours     uint64 `json:"hours"`
	Minutes   uint64 `json:"minutes"`
	Seconds   uint64 `json:"seconds"`
}

// NewCountdownDisplay splits remaining seconds into clock fields.
func NewCountdownDisplay(remaining uint64) CountdownDisplay {
	return CountdownDisplay{
		Remaining: remaining,
		Hours:     remaining / 3600,
		Minutes:   remaining % 3600 / 60,
		Seconds:   remaining % 60,
	}
}

func (d CountdownDisplay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", d.Hours, d.Minutes, d.Seconds)
}

// Chain names the network whose migration is tracked.
type Chain string

// Celo is the chain migrating to an Ethereum L2.
var Celo Chain = "celo"
