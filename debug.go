package tweener

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// debugLog logs the stats of one pass. Only called in debug mode.
func (s *Scheduler) debugLog(phase Phase, visited int, elapsed time.Duration) {
	s.logger.Debug("advance",
		zap.Stringer("phase", phase),
		zap.Int("visited", visited),
		zap.Duration("elapsed", elapsed),
		zap.Int("slots", s.arena.Len()),
		zap.Int("registrations", s.registry.Len()),
		zap.Float64("dt", s.dt),
		zap.Float64("unscaled_dt", s.unscaledDt),
	)
}

// fault reports an internal contract violation: a double free, a stale slot,
// an unbalanced token reference or a record read back as the wrong type. In
// debug mode it panics with a descriptive message; otherwise it logs at Error
// level and the caller skips the offending operation.
func (s *Scheduler) fault(op string, err error) {
	if s.debug {
		panic(fmt.Sprintf("tweener debug: %s: %v", op, err))
	}
	s.logger.Error("contract violation", zap.String("op", op), zap.Error(err))
}
