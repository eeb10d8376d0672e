package tweener

//go:generate mockgen -source=observer.go -destination=mock_observer_test.go -package=tweener

import (
	"sync/atomic"
	"time"
)

// Observer receives scheduler lifecycle and tick events. Calls are made on
// the scheduler's goroutine and must not call back into the scheduler.
type Observer interface {
	// TweenStarted is called when a tween enters active scheduling.
	TweenStarted(u UpdateType)
	// TweenCompleted is called when a scheduled tween completes.
	TweenCompleted(u UpdateType)
	// TweenCanceled is called when a scheduled tween is canceled, by handle,
	// token, link or disposal.
	TweenCanceled(u UpdateType)
	// CapacityExhausted is called when the "arena" or "registry" table is
	// full.
	CapacityExhausted(table string)
	// Advanced is called after every pass.
	Advanced(phase Phase, visited int, elapsed time.Duration)
}

// NoopObserver discards every event.
type NoopObserver struct{}

func (NoopObserver) TweenStarted(UpdateType) {}
func (NoopObserver) TweenCompleted(UpdateType) {}
func (NoopObserver) TweenCanceled(UpdateType) {}
func (NoopObserver) CapacityExhausted(string) {}
func (NoopObserver) Advanced(Phase, int, time.Duration) {}

// BasicObserver counts events with atomic counters so a snapshot may be taken
// from another goroutine.
type BasicObserver struct {
	started    atomic.Int64
	completed  atomic.Int64
	canceled   atomic.Int64
	exhausted  atomic.Int64
	passes     [2]atomic.Int64
	visited    atomic.Int64
	advanceDur atomic.Int64
}

// ObserverSnapshot is a point-in-time copy of BasicObserver's counters.
type ObserverSnapshot struct {
	Started           int64
	Completed         int64
	Canceled          int64
	CapacityExhausted int64
	UpdatePasses      int64
	FixedPasses       int64
	Visited           int64
	AdvanceTime       time.Duration
}

// Active returns the number of tweens started and not yet ended.
func (o ObserverSnapshot) Active() int64 { return o.Started - o.Completed - o.Canceled }

func (o *BasicObserver) TweenStarted(UpdateType) { o.started.Add(1) }
func (o *BasicObserver) TweenCompleted(UpdateType) { o.completed.Add(1) }
func (o *BasicObserver) TweenCanceled(UpdateType) { o.canceled.Add(1) }
func (o *BasicObserver) CapacityExhausted(string) { o.exhausted.Add(1) }

func (o *BasicObserver) Advanced(phase Phase, visited int, elapsed time.Duration) {
	o.passes[phase&1].Add(1)
	o.visited.Add(int64(visited))
	o.advanceDur.Add(int64(elapsed))
}

// Snapshot returns the current counters.
func (o *BasicObserver) Snapshot() ObserverSnapshot {
	return ObserverSnapshot{
		Started:           o.started.Load(),
		Completed:         o.completed.Load(),
		Canceled:          o.canceled.Load(),
		CapacityExhausted: o.exhausted.Load(),
		UpdatePasses:      o.passes[PhaseUpdate].Load(),
		FixedPasses:       o.passes[PhaseFixedUpdate].Load(),
		Visited:           o.visited.Load(),
		AdvanceTime:       time.Duration(o.advanceDur.Load()),
	}
}
