package tweener

import (
	"errors"
	"testing"
)

func TestBasicObserverCounts(t *testing.T) {
	obs := &BasicObserver{}
	clock := &ManualClock{}
	s := NewScheduler(Config{Capacity: 2, Clock: clock, Observer: obs})

	done, _ := Float(s, "a", 0, 1).SetDuration(0.25).Play()
	canceled, _ := Float(s, "b", 0, 1).Play()
	if _, err := Float(s, "c", 0, 1).Build(); !errors.Is(err, ErrOutOfCapacity) {
		t.Fatalf("err = %v", err)
	}

	tick(s, clock, 0.25)
	canceled.Cancel()
	clock.Set(0.25, 0.25)
	s.Advance(PhaseFixedUpdate)

	snap := obs.Snapshot()
	want := ObserverSnapshot{
		Started:           2,
		Completed:         1,
		Canceled:          1,
		CapacityExhausted: 1,
		UpdatePasses:      1,
		FixedPasses:       1,
		Visited:           2,
		AdvanceTime:       snap.AdvanceTime,
	}
	if snap != want {
		t.Errorf("snapshot = %+v, want %+v", snap, want)
	}
	if snap.Active() != 0 {
		t.Errorf("active = %d", snap.Active())
	}
	if done.State() != StateCompleted {
		t.Errorf("done state = %v", done.State())
	}
}

func TestObserverIgnoresIdleCancel(t *testing.T) {
	obs := &BasicObserver{}
	s := NewScheduler(Config{Observer: obs})
	tw, _ := Float(s, "idle", 0, 1).Build()
	tw.Cancel()
	if snap := obs.Snapshot(); snap.Started != 0 || snap.Canceled != 0 {
		t.Errorf("idle tween reported: %+v", snap)
	}
}
