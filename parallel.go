package tweener

import (
	"context"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AdvanceParallel is Advance split in two: a compute pass that advances time
// and evaluates every visible entry of phase on up to workers goroutines,
// followed by a serial commit pass, in registration-table order, that invokes
// callbacks and tears down finished tweens. The results are identical to
// Advance.
//
// The compute pass touches nothing but each tween's own record, so Link
// implementations and Curve functions must be safe for concurrent calls. If
// ctx is done before the commit pass, the context error is returned and no
// outcome is committed; time has advanced for the computed tweens, and the
// next pass evaluates them again. workers <= 0 selects GOMAXPROCS.
func (s *Scheduler) AdvanceParallel(ctx context.Context, phase Phase, workers int) error {
	if s.disposed {
		return ErrDisposed
	}
	if s.ticking {
		s.logger.Warn("nested advance ignored", zap.Stringer("phase", phase))
		return nil
	}
	s.ticking = true
	defer func() { s.ticking = false }()

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	s.sample()
	start := time.Now()
	s.batch = s.registry.visible(phase, s.batch)
	entries := s.batch

	if len(entries) > 0 {
		chunk := (len(entries) + workers - 1) / workers
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for lo := 0; lo < len(entries); lo += chunk {
			part := entries[lo:min(lo+chunk, len(entries))]
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				for _, reg := range part {
					reg.ops.compute(s, reg.slot)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, reg := range entries {
			reg.ops.commit(s, reg.slot)
		}
	}
	s.finishPass(phase, len(entries), time.Since(start))
	return nil
}
