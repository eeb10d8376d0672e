package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/xid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phanxgames/tweener"
	"github.com/phanxgames/tweener/promobserver"
)

type benchOptions struct {
	count       int
	frames      int
	dt          float64
	workers     int
	seed        uint64
	metricsAddr string
}

var benchOpts benchOptions

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Drive many random tweens for a number of frames and report timings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBench(cmd.Context(), cmd, benchOpts)
	},
}

func init() {
	f := benchCmd.Flags()
	f.IntVar(&benchOpts.count, "count", 1000, "tweens kept alive at all times")
	f.IntVar(&benchOpts.frames, "frames", 600, "frames to run")
	f.Float64Var(&benchOpts.dt, "dt", 1.0/60, "seconds per frame")
	f.IntVar(&benchOpts.workers, "workers", 0, "parallel compute workers; 0 runs the serial advance")
	f.Uint64Var(&benchOpts.seed, "seed", 1, "random seed")
	f.StringVar(&benchOpts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while running")
	rootCmd.AddCommand(benchCmd)
}

// benchRun keeps count tweens alive by respawning each one as it completes.
type benchRun struct {
	s       *tweener.Scheduler
	rng     *rand.Rand
	eases   []tweener.Ease
	sink    float64
	spawned int
	failed  int
}

func (b *benchRun) spawn() {
	from, to := b.rng.Float64()*100, b.rng.Float64()*100
	_, err := tweener.Float(b.s, b, from, to).
		SetDuration(0.25 + b.rng.Float64()*2).
		SetDelay(b.rng.Float64() * 0.25).
		SetEase(b.eases[b.rng.IntN(len(b.eases))]).
		SetOnValueChange(benchValue).
		SetOnComplete(benchComplete).
		Play()
	if err != nil {
		b.failed++
		return
	}
	b.spawned++
}

func benchValue(b *benchRun, v float64) { b.sink += v }

func benchComplete(b *benchRun) { b.spawn() }

func runBench(ctx context.Context, cmd *cobra.Command, opts benchOptions) error {
	if opts.count <= 0 || opts.frames <= 0 || opts.dt <= 0 {
		return errors.New("count, frames and dt must be positive")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	runID := xid.New()
	log := global.logger.With(zap.Stringer("run", runID))

	var obs tweener.Observer
	if opts.metricsAddr != "" {
		reg := prometheus.NewRegistry()
		po, err := promobserver.New(reg, "tweener")
		if err != nil {
			return err
		}
		obs = po
		srv := &http.Server{Addr: opts.metricsAddr, Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{})}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server", zap.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		log.Info("serving metrics", zap.String("addr", opts.metricsAddr))
	}

	s := newScheduler(obs)
	defer s.Dispose()
	clock := &tweener.ManualClock{}
	s.SetClock(clock)

	b := &benchRun{
		s:     s,
		rng:   rand.New(rand.NewPCG(opts.seed, opts.seed^0x9e3779b97f4a7c15)),
		eases: tweener.Eases(),
	}
	for range opts.count {
		b.spawn()
	}

	frameTimes := make([]time.Duration, 0, opts.frames)
	start := time.Now()
	for range opts.frames {
		clock.Set(opts.dt, opts.dt)
		t0 := time.Now()
		if opts.workers > 0 {
			if err := s.AdvanceParallel(ctx, tweener.PhaseUpdate, opts.workers); err != nil {
				return err
			}
		} else {
			s.Advance(tweener.PhaseUpdate)
		}
		frameTimes = append(frameTimes, time.Since(t0))
	}
	total := time.Since(start)

	slices.Sort(frameTimes)
	p50 := frameTimes[len(frameTimes)/2]
	p99 := frameTimes[min(len(frameTimes)-1, len(frameTimes)*99/100)]
	st := s.Stats()

	log.Info("bench finished",
		zap.Int("count", opts.count),
		zap.Int("frames", opts.frames),
		zap.Int("workers", opts.workers),
		zap.Int("spawned", b.spawned),
		zap.Int("failed", b.failed),
		zap.Duration("total", total),
		zap.Duration("p50", p50),
		zap.Duration("p99", p99),
		zap.Int("live_slots", st.Slots),
	)
	fmt.Fprintf(cmd.OutOrStdout(), "run %s: %d frames of %d tweens in %v (p50 %v, p99 %v, %d spawned)\n",
		runID, opts.frames, opts.count, total, p50, p99, b.spawned)
	return nil
}
