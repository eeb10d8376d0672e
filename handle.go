package tweener

import "fmt"

// Tween is a handle to a committed tween. Handles are small values and may be
// copied freely. Once the tween has ended its slot may be reused by another
// tween; the handle detects this through the slot generation, its control
// methods become no-ops, and its getters keep reporting the final values.
// The zero Tween is a handle to nothing.
type Tween[V, C any] struct {
	s  *Scheduler
	id SlotID
	in *instance[V, C]
}

// live reports whether the handle's slot still holds its tween.
func (t Tween[V, C]) live() bool {
	return t.in != nil && t.s.arena.check(t.id) == nil
}

// controllable reports whether the tween may still change state. A tween
// running its on-complete callback is terminal while still holding its slot.
func (t Tween[V, C]) controllable() bool {
	return t.live() && !t.in.state.Terminal()
}

// Play schedules an idle tween, or resumes a paused one. Playing an already
// playing tween does nothing. It fails with ErrOutOfCapacity when the
// dispatch registry is full, leaving the tween idle, and with ErrInvalidSlot
// when the tween has already ended.
func (t Tween[V, C]) Play() error {
	if !t.controllable() {
		return fmt.Errorf("play %v: %w", t.id, ErrInvalidSlot)
	}
	if err := t.in.play(t.s); err != nil {
		return fmt.Errorf("play %v: %w", t.id, err)
	}
	return nil
}

// Pause freezes a playing tween: no time advance and no callbacks until Play
// is called again.
func (t Tween[V, C]) Pause() {
	if t.controllable() {
		t.in.pause()
	}
}

// Cancel stops the tween immediately without invoking any callback and
// releases its slot. An idle tween is released too.
func (t Tween[V, C]) Cancel() {
	if t.controllable() {
		t.in.release(t.s, StateCanceled)
	}
}

// Complete resolves a playing tween to its end value immediately: the value
// callback fires with the final value, then on-complete, then the slot is
// released. Idle tweens are not affected.
func (t Tween[V, C]) Complete() {
	if t.controllable() && t.in.active() {
		t.in.forceComplete(t.s)
	}
}

// Slot returns the tween's slot ID, or NoSlot for the zero handle.
func (t Tween[V, C]) Slot() SlotID {
	if t.in == nil {
		return NoSlot
	}
	return t.id
}

// State returns the lifecycle state.
func (t Tween[V, C]) State() State {
	if t.in == nil {
		return StateIdle
	}
	if t.in.active() && t.in.paused {
		return StatePaused
	}
	return t.in.state
}

// IsPlaying reports whether the tween is scheduled and not paused.
func (t Tween[V, C]) IsPlaying() bool {
	return t.controllable() && t.in.active() && !t.in.paused
}

// IsPaused reports whether the tween is scheduled and paused.
func (t Tween[V, C]) IsPaused() bool {
	return t.controllable() && t.in.active() && t.in.paused
}

// ElapsedTime returns the time since the delay ended, negative while still
// inside the delay window.
func (t Tween[V, C]) ElapsedTime() float64 {
	if t.in == nil {
		return 0
	}
	return t.in.elapsed
}

// Duration returns the configured duration in seconds.
func (t Tween[V, C]) Duration() float64 {
	if t.in == nil {
		return 0
	}
	return t.in.duration
}

// NormalizedValue returns progress in [0, 1] before curve and easing.
func (t Tween[V, C]) NormalizedValue() float64 {
	if t.in == nil {
		return 0
	}
	return t.in.progress
}

// EasedValue returns the progress after curve and easing, which may leave
// [0, 1] for overshooting eases.
func (t Tween[V, C]) EasedValue() float64 {
	if t.in == nil {
		return 0
	}
	return t.in.eased
}

// Value returns the last interpolated value, the start value before the
// first tick.
func (t Tween[V, C]) Value() V {
	if t.in == nil {
		var zero V
		return zero
	}
	return t.in.value
}
