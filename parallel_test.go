package tweener

import (
	"context"
	"errors"
	"testing"
)

// populate plays n tweens with staggered durations and records their
// callbacks into log in callback order.
func populate(t *testing.T, s *Scheduler, n int, log *[]string) []Tween[float64, int] {
	t.Helper()
	tweens := make([]Tween[float64, int], n)
	for i := range tweens {
		tw, err := Float(s, i, 0, float64(i)).
			SetDuration(float64(i%4+1) * 0.25).
			SetEase(Ease(i % int(easeCount))).
			SetOnValueChange(func(ctx int, v float64) {
				*log = append(*log, "v")
			}).
			SetOnComplete(func(ctx int) {
				*log = append(*log, "c")
			}).
			Play()
		if err != nil {
			t.Fatal(err)
		}
		tweens[i] = tw
	}
	return tweens
}

func TestAdvanceParallelMatchesAdvance(t *testing.T) {
	const n = 64
	serial, sclock := newTestScheduler(n)
	parallel, pclock := newTestScheduler(n)
	var slog, plog []string
	st := populate(t, serial, n, &slog)
	pt := populate(t, parallel, n, &plog)

	for frame := 0; frame < 5; frame++ {
		tick(serial, sclock, 0.25)
		pclock.Set(0.25, 0.25)
		if err := parallel.AdvanceParallel(context.Background(), PhaseUpdate, 4); err != nil {
			t.Fatal(err)
		}
	}

	if len(slog) != len(plog) {
		t.Fatalf("callback counts differ: %d vs %d", len(slog), len(plog))
	}
	for i := range slog {
		if slog[i] != plog[i] {
			t.Fatalf("callback order differs at %d", i)
		}
	}
	for i := range st {
		if st[i].Value() != pt[i].Value() || st[i].State() != pt[i].State() {
			t.Errorf("tween %d: serial %v/%v, parallel %v/%v",
				i, st[i].Value(), st[i].State(), pt[i].Value(), pt[i].State())
		}
	}
	if parallel.Stats().Slots != 0 {
		t.Errorf("parallel slots = %d, want 0", parallel.Stats().Slots)
	}
}

func TestAdvanceParallelCancelledContext(t *testing.T) {
	s, clock := newTestScheduler(8)
	rec := &recorder{}
	playFloat(t, s, rec, 0, 1, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	clock.Set(0.25, 0.25)
	if err := s.AdvanceParallel(ctx, PhaseUpdate, 2); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(rec.values) != 0 {
		t.Error("outcomes committed after cancellation")
	}
	if s.Stats().Ticks != 0 {
		t.Error("cancelled pass was counted")
	}
}

func TestAdvanceParallelLinkCancel(t *testing.T) {
	s, clock := newTestScheduler(8)
	owner := NewOwner("o")
	rec := &recorder{}
	tw, _ := Float(s, "ctx", 0, 1).SetLink(owner).SetOnValueChange(rec.onValue).Play()
	owner.Dispose()
	clock.Set(0.25, 0.25)
	if err := s.AdvanceParallel(context.Background(), PhaseUpdate, 0); err != nil {
		t.Fatal(err)
	}
	if tw.State() != StateCanceled || len(rec.values) != 0 {
		t.Errorf("state %v, values %v", tw.State(), rec.values)
	}
}

func TestAdvanceParallelAfterDispose(t *testing.T) {
	s, _ := newTestScheduler(4)
	s.Dispose()
	if err := s.AdvanceParallel(context.Background(), PhaseUpdate, 2); !errors.Is(err, ErrDisposed) {
		t.Errorf("err = %v, want ErrDisposed", err)
	}
}
