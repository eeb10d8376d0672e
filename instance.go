package tweener

import "errors"

// Curve remaps normalized progress before easing. Its output is not clamped.
type Curve func(t float64) float64

// Lerp interpolates between start and end. t is the eased progress and may lie
// outside [0, 1] for overshooting eases.
type Lerp[V any] func(start, end V, t float64) V

// outcome is the result of the compute half of a tick.
type outcome uint8

const (
	outcomeNone     outcome = iota // nothing to report (paused, delayed)
	outcomeValue                   // new value, keep playing
	outcomeComplete                // final value, then complete
	outcomeCancel                  // dead link or cancelled token
)

// instance is the record stored in an arena slot for a tween of value type V
// and context type C.
type instance[V, C any] struct {
	slot       SlotID
	reg        RegistrationID
	registered bool

	elapsed  float64 // negative during the delay window
	duration float64
	progress float64 // normalized time before curve and easing
	eased    float64

	start V
	end   V
	value V

	ease       Ease
	curve      Curve
	lerp       Lerp[V]
	updateType UpdateType

	state    State
	paused   bool
	pending  outcome
	notified bool // final value already delivered this tick
	released bool

	link     Link
	token    *tokenState
	attached bool

	onValueChange func(ctx C, value V)
	onComplete    func(ctx C)
	ctx           C
}

// active reports whether the instance is scheduled, paused or not.
func (in *instance[V, C]) active() bool {
	return in.state == StateAwaitingPlay || in.state == StatePlaying
}

// linkGone reports whether the linked owner has disappeared.
func (in *instance[V, C]) linkGone() bool {
	return in.link != nil && in.link.IsDisposed()
}

// compute runs steps one to eight of a tick: cancellation checks, time advance
// and evaluation. It touches nothing but the instance itself.
func (in *instance[V, C]) compute(dt, unscaled float64) outcome {
	if in.state == StateAwaitingPlay {
		in.state = StatePlaying
	}
	if in.linkGone() {
		return outcomeCancel
	}
	if in.token != nil && in.token.cancelled {
		return outcomeCancel
	}
	if in.paused {
		return outcomeNone
	}
	if in.updateType.Unscaled() {
		in.elapsed += unscaled
	} else {
		in.elapsed += dt
	}
	if in.elapsed < 0 {
		return outcomeNone
	}
	in.evaluate()
	if in.elapsed >= in.duration {
		return outcomeComplete
	}
	return outcomeValue
}

// evaluate computes progress, eased progress and value from elapsed time.
func (in *instance[V, C]) evaluate() {
	t := 1.0
	if in.duration > 0 {
		t = clamp01(in.elapsed / in.duration)
	}
	in.progress = t
	if in.curve != nil {
		t = in.curve(t)
	}
	in.eased = in.ease.Evaluate(t)
	in.value = in.lerp(in.start, in.end, in.eased)
}

// commit applies an outcome: value callback, completion and teardown.
func (in *instance[V, C]) commit(s *Scheduler, o outcome) {
	switch o {
	case outcomeCancel:
		in.release(s, StateCanceled)
	case outcomeValue:
		in.notify()
	case outcomeComplete:
		in.notified = true
		in.notify()
		// The value callback may have ended the tween itself.
		if in.active() {
			in.finish(s)
		}
	}
}

func (in *instance[V, C]) notify() {
	if in.onValueChange != nil {
		in.onValueChange(in.ctx, in.value)
	}
}

// forceComplete resolves the tween to its end value outside the tick.
func (in *instance[V, C]) forceComplete(s *Scheduler) {
	if in.state == StateAwaitingPlay {
		in.state = StatePlaying
	}
	if in.elapsed < in.duration {
		in.elapsed = in.duration
	}
	in.evaluate()
	if !in.notified {
		in.notify()
	}
	if in.active() {
		in.finish(s)
	}
}

// finish fires on-complete and tears the tween down. The state turns terminal
// first so the callback cannot cancel or complete the tween a second time.
func (in *instance[V, C]) finish(s *Scheduler) {
	in.state = StateCompleted
	if in.onComplete != nil {
		in.onComplete(in.ctx)
	}
	in.release(s, StateCompleted)
}

// play registers the instance for ticking, or resumes it when paused.
func (in *instance[V, C]) play(s *Scheduler) error {
	switch {
	case in.state == StateIdle:
		reg, err := s.registry.Register(in.slot, in.updateType.Phase(), slotOpsFor[V, C]())
		if err != nil {
			s.capacityExhausted("registry", err)
			return err
		}
		in.reg = reg
		in.registered = true
		in.state = StateAwaitingPlay
		in.paused = false
		if in.token != nil && !in.attached {
			in.token.attach()
			in.attached = true
		}
		s.observer.TweenStarted(in.updateType)
	case in.active():
		in.paused = false
	}
	return nil
}

func (in *instance[V, C]) pause() {
	if in.active() {
		in.paused = true
	}
}

// release frees everything the instance holds: dispatch entry, token
// reference and slot. Callbacks and context are dropped so the slot keeps no
// owner references alive; the last value and timing stay readable. Only the
// first call has any effect.
func (in *instance[V, C]) release(s *Scheduler, final State) {
	if in.released {
		return
	}
	in.released = true
	wasScheduled := in.registered
	in.state = final
	in.paused = false
	in.pending = outcomeNone
	if in.registered {
		in.registered = false
		if err := s.registry.Unregister(in.reg); err != nil {
			s.fault("unregister", err)
		}
	}
	if in.token != nil {
		if in.attached {
			in.attached = false
			if err := in.token.detach(); err != nil {
				s.fault("detach token", err)
			}
		}
		if err := in.token.unhold(); err != nil {
			s.fault("release token", err)
		}
		in.token = nil
	}
	if err := s.arena.Free(in.slot); err != nil {
		s.fault("free slot", err)
	}
	var zero C
	in.ctx = zero
	in.onValueChange = nil
	in.onComplete = nil
	in.curve = nil
	in.link = nil

	if wasScheduled {
		if final == StateCompleted {
			s.observer.TweenCompleted(in.updateType)
		} else {
			s.observer.TweenCanceled(in.updateType)
		}
	}
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// lookup resolves a slot to its typed record, reporting failures as faults.
func lookup[V, C any](s *Scheduler, id SlotID) (*instance[V, C], bool) {
	in, err := readRecord[*instance[V, C]](s.arena, id)
	if err != nil {
		s.fault("lookup", err)
		return nil, false
	}
	return in, true
}

// lookupStale resolves a slot that may legitimately have been freed since the
// caller saw it. Only a type mismatch is a fault.
func lookupStale[V, C any](s *Scheduler, id SlotID) (*instance[V, C], bool) {
	in, err := readRecord[*instance[V, C]](s.arena, id)
	if err != nil {
		if isRecordType(err) {
			s.fault("lookup", err)
		}
		return nil, false
	}
	return in, true
}

func advanceSlot[V, C any](s *Scheduler, id SlotID) {
	in, ok := lookup[V, C](s, id)
	if !ok || !in.active() {
		return
	}
	in.commit(s, in.compute(s.dt, s.unscaledDt))
}

func computeSlot[V, C any](s *Scheduler, id SlotID) {
	in, ok := lookupStale[V, C](s, id)
	if !ok || !in.active() {
		return
	}
	in.pending = in.compute(s.dt, s.unscaledDt)
}

func commitSlot[V, C any](s *Scheduler, id SlotID) {
	in, ok := lookupStale[V, C](s, id)
	if !ok || !in.active() {
		return
	}
	o := in.pending
	in.pending = outcomeNone
	in.commit(s, o)
}

func linkedSlot[V, C any](s *Scheduler, id SlotID, link Link, complete bool) {
	in, ok := lookupStale[V, C](s, id)
	if !ok || !in.active() || in.link == nil || in.link != link {
		return
	}
	if complete {
		in.forceComplete(s)
		return
	}
	in.release(s, StateCanceled)
}

// discard releases a committed instance without callbacks whatever its state.
// The scheduler uses it to drain the arena on disposal. An instance whose
// on-complete is running when the scheduler is disposed stays completed.
func (in *instance[V, C]) discard(s *Scheduler) {
	if in.released {
		return
	}
	final := StateCanceled
	if in.state == StateCompleted {
		final = StateCompleted
	}
	in.release(s, final)
}

func isRecordType(err error) bool { return errors.Is(err, ErrRecordType) }

func slotOpsFor[V, C any]() slotOps {
	return slotOps{
		advance: advanceSlot[V, C],
		compute: computeSlot[V, C],
		commit:  commitSlot[V, C],
		linked:  linkedSlot[V, C],
	}
}
