package tweener

// DriverConfig holds the parameters of a Driver. Zero values select defaults.
type DriverConfig struct {
	// FixedStep is the length of one fixed-update step in seconds.
	// Defaults to 1/50.
	FixedStep float64
	// MaxFixedSteps caps the fixed steps run per frame; accumulated time
	// beyond the cap is dropped. Defaults to 8.
	MaxFixedSteps int
}

// Driver turns real frame time into scheduler passes: one update pass per
// frame and as many fixed-update passes as whole fixed steps have
// accumulated. It installs its own clock in the scheduler.
type Driver struct {
	s         *Scheduler
	clock     *ManualClock
	cfg       DriverConfig
	timeScale float64
	acc       float64
	frames    uint64
}

// NewDriver creates a driver for s and replaces s's clock.
func NewDriver(s *Scheduler, cfg DriverConfig) *Driver {
	if cfg.FixedStep <= 0 {
		cfg.FixedStep = 1.0 / 50
	}
	if cfg.MaxFixedSteps <= 0 {
		cfg.MaxFixedSteps = 8
	}
	d := &Driver{s: s, clock: &ManualClock{}, cfg: cfg, timeScale: 1}
	s.SetClock(d.clock)
	return d
}

// Scheduler returns the driven scheduler.
func (d *Driver) Scheduler() *Scheduler { return d.s }

// SetTimeScale scales the delta seen by scaled tweens. Negative values are
// treated as 0, which freezes scaled tweens.
func (d *Driver) SetTimeScale(f float64) {
	if f < 0 {
		f = 0
	}
	d.timeScale = f
}

// TimeScale returns the current time scale.
func (d *Driver) TimeScale() float64 { return d.timeScale }

// Frames returns the number of frames run.
func (d *Driver) Frames() uint64 { return d.frames }

// Frame runs one frame of realDelta seconds and returns the number of fixed
// steps it ran.
func (d *Driver) Frame(realDelta float64) int {
	if realDelta < 0 {
		realDelta = 0
	}
	d.frames++
	scaled := realDelta * d.timeScale
	d.clock.Set(scaled, realDelta)
	d.s.Advance(PhaseUpdate)

	d.acc += scaled
	steps := 0
	for d.acc >= d.cfg.FixedStep && steps < d.cfg.MaxFixedSteps {
		d.acc -= d.cfg.FixedStep
		d.clock.Set(d.cfg.FixedStep, d.cfg.FixedStep)
		d.s.Advance(PhaseFixedUpdate)
		steps++
	}
	if steps == d.cfg.MaxFixedSteps && d.acc >= d.cfg.FixedStep {
		d.acc = 0
	}
	return steps
}
