package dashboard

import "github.com/goodnatureofminers/l2-migration-dashboard/internal/migration/model"

// inbox turns observer calls from component goroutines into closures applied
// by the dashboard loop.
type inbox struct {
	d      *Dashboard
	events chan<- func()
	done   <-chan struct{}
}

func (in *inbox) enqueue(fn func()) {
	select {
	case in.events <- fn:
	case <-in.done:
	}
}

func (in *inbox) HeightUpdated(state model.HeightState) {
	in.enqueue(func() { in.d.heightUpdated(state) })
}

func (in *inbox) TargetReached(uint64) {
	in.enqueue(func() { in.d.hardfork(model.ReasonTargetHeight) })
}

func (in *inbox) RPCDown(error) {
	in.enqueue(func() { in.d.hardfork(model.ReasonRPCDown) })
}

func (in *inbox) CountdownTick(display model.CountdownDisplay) {
	in.enqueue(func() { in.d.countdownTick(display) })
}

func (in *inbox) CountdownEnded() {
	in.enqueue(in.d.countdownEnded)
}

type stageSink struct {
	*inbox
	apply func(model.StageFeedState)
}

func (s stageSink) StagesUpdated(state model.StageFeedState) {
	s.enqueue(func() { s.apply(state) })
}

type partnerSink struct {
	*inbox
	apply func(model.PartnerState)
}

func (s partnerSink) PartnersUpdated(state model.PartnerState) {
	s.enqueue(func() { s.apply(state) })
}
