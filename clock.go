package tweener

//go:generate mockgen -source=clock.go -destination=mock_clock_test.go -package=tweener

// Clock supplies the elapsed time for a scheduling pass. The scheduler samples
// it exactly once at the start of every Advance. Both deltas must be
// non-negative; no clamping is applied, so a stalled host produces a
// correspondingly large jump.
type Clock interface {
	DeltaTime() float64
	UnscaledDeltaTime() float64
}

// ManualClock is a Clock whose deltas are set by the host before each pass.
type ManualClock struct {
	Delta    float64
	Unscaled float64
}

// Set stores the deltas for the next pass.
func (c *ManualClock) Set(delta, unscaled float64) {
	c.Delta = delta
	c.Unscaled = unscaled
}

// DeltaTime implements Clock.
func (c *ManualClock) DeltaTime() float64 { return c.Delta }

// UnscaledDeltaTime implements Clock.
func (c *ManualClock) UnscaledDeltaTime() float64 { return c.Unscaled }
