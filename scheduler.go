package tweener

import (
	"time"

	"github.com/rs/xid"
	"go.uber.org/zap"
)

// DefaultCapacity is the number of arena slots a Scheduler gets when
// Config.Capacity is zero.
const DefaultCapacity = 1024 * 4

// Config holds the parameters of a Scheduler. Zero values select defaults.
type Config struct {
	// Capacity is the fixed number of arena slots, one per committed tween.
	Capacity int
	// RegistryCapacity is the fixed number of dispatch entries, one per
	// playing tween. Defaults to Capacity.
	RegistryCapacity int
	// Clock supplies the delta times. Defaults to a ManualClock.
	Clock Clock
	// Logger receives diagnostics. Defaults to a no-op logger.
	Logger *zap.Logger
	// Observer receives lifecycle and tick events. Defaults to NoopObserver.
	Observer Observer
	// Debug enables per-Advance stats logging and turns internal contract
	// violations into panics.
	Debug bool
}

// Scheduler owns the slot arena, the dispatch registry and the cancellation
// token allocator, and advances every playing tween once per Advance call.
// All methods must be called from a single goroutine.
type Scheduler struct {
	id       xid.ID
	arena    *Arena
	registry *Registry
	tokens   *tokenAllocator
	clock    Clock
	logger   *zap.Logger
	observer Observer
	debug    bool

	ticking  bool
	disposed bool

	// Deltas sampled from the clock at the start of the current pass.
	dt         float64
	unscaledDt float64
	ticks      uint64

	batch []registration
}

// NewScheduler creates a scheduler with fixed-capacity tables.
func NewScheduler(cfg Config) *Scheduler {
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}
	if cfg.RegistryCapacity <= 0 {
		cfg.RegistryCapacity = cfg.Capacity
	}
	if cfg.Clock == nil {
		cfg.Clock = &ManualClock{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Observer == nil {
		cfg.Observer = NoopObserver{}
	}
	id := xid.New()
	return &Scheduler{
		id:       id,
		arena:    NewArena(cfg.Capacity),
		registry: NewRegistry(cfg.RegistryCapacity),
		tokens:   newTokenAllocator(),
		clock:    cfg.Clock,
		logger:   cfg.Logger.With(zap.Stringer("scheduler", id)),
		observer: cfg.Observer,
		debug:    cfg.Debug,
	}
}

// ID returns the scheduler's unique identity, also attached to its logs.
func (s *Scheduler) ID() xid.ID { return s.id }

// Logger returns the scheduler's logger.
func (s *Scheduler) Logger() *zap.Logger { return s.logger }

// Clock returns the clock sampled by Advance.
func (s *Scheduler) Clock() Clock { return s.clock }

// SetClock replaces the clock. A nil clock is ignored.
func (s *Scheduler) SetClock(c Clock) {
	if c != nil {
		s.clock = c
	}
}

// SetDebugMode enables or disables debug mode.
func (s *Scheduler) SetDebugMode(enabled bool) { s.debug = enabled }

// Disposed reports whether Dispose has been called.
func (s *Scheduler) Disposed() bool { return s.disposed }

// Advance runs one pass of phase: the clock is sampled once, then every
// entry of that phase registered before the call is advanced exactly once, in
// registration-table order. Tweens played from callbacks during the pass are
// first advanced by the next pass of their phase.
//
// Calling Advance from inside a tween callback is ignored.
func (s *Scheduler) Advance(phase Phase) {
	if s.disposed {
		return
	}
	if s.ticking {
		s.logger.Warn("nested advance ignored", zap.Stringer("phase", phase))
		return
	}
	s.ticking = true
	defer func() { s.ticking = false }()

	s.sample()
	start := time.Now()
	visited := s.registry.tick(s, phase)
	s.finishPass(phase, visited, time.Since(start))
}

func (s *Scheduler) sample() {
	s.dt = s.clock.DeltaTime()
	s.unscaledDt = s.clock.UnscaledDeltaTime()
}

func (s *Scheduler) finishPass(phase Phase, visited int, elapsed time.Duration) {
	s.ticks++
	s.observer.Advanced(phase, visited, elapsed)
	if s.debug {
		s.debugLog(phase, visited, elapsed)
	}
}

// CancelAllWithLink cancels, without callbacks, every playing tween linked to
// link. Tweens that were built but never played are not affected.
func (s *Scheduler) CancelAllWithLink(link Link) {
	if link == nil || s.disposed {
		return
	}
	s.registry.cancelByLink(s, link, false)
}

// CompleteAllWithLink completes every playing tween linked to link, firing
// its final value and completion callbacks.
func (s *Scheduler) CompleteAllWithLink(link Link) {
	if link == nil || s.disposed {
		return
	}
	s.registry.cancelByLink(s, link, true)
}

// discarder is implemented by every arena record.
type discarder interface {
	discard(s *Scheduler)
}

// Dispose cancels every committed tween without callbacks, releases every
// cancellation token state and closes the scheduler: Build fails with
// ErrDisposed and Advance does nothing afterwards. Calling Dispose again is a
// no-op.
func (s *Scheduler) Dispose() {
	if s.disposed {
		return
	}
	slots := 0
	for _, id := range s.arena.occupied() {
		rec, err := s.arena.Read(id)
		if err != nil {
			continue
		}
		d, ok := rec.(discarder)
		if !ok {
			s.fault("dispose", ErrRecordType)
			continue
		}
		d.discard(s)
		slots++
	}
	tokens := s.tokens.freeAll()
	s.disposed = true
	s.logger.Info("scheduler disposed",
		zap.Int("slots", slots),
		zap.Int("tokens", tokens),
		zap.Uint64("ticks", s.ticks),
	)
}

// Stats is a snapshot of the scheduler's table occupancy.
type Stats struct {
	Slots            int
	SlotCapacity     int
	Registrations    int
	RegistryCapacity int
	Tokens           int
	Ticks            uint64
}

// Stats returns current occupancy counts.
func (s *Scheduler) Stats() Stats {
	return Stats{
		Slots:            s.arena.Len(),
		SlotCapacity:     s.arena.Capacity(),
		Registrations:    s.registry.Len(),
		RegistryCapacity: s.registry.Capacity(),
		Tokens:           s.tokens.len(),
		Ticks:            s.ticks,
	}
}

func (s *Scheduler) capacityExhausted(table string, err error) {
	s.logger.Warn("capacity exhausted", zap.String("table", table), zap.Error(err))
	s.observer.CapacityExhausted(table)
}
