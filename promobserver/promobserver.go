// Package promobserver exports scheduler events as Prometheus metrics.
package promobserver

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/phanxgames/tweener"
)

var updateTypes = [...]tweener.UpdateType{
	tweener.Update,
	tweener.FixedUpdate,
	tweener.UnscaledUpdate,
	tweener.UnscaledFixedUpdate,
}

// Observer implements tweener.Observer on Prometheus collectors. Label
// children are resolved up front so the per-tick path does no lookups.
type Observer struct {
	started   *prometheus.CounterVec
	completed *prometheus.CounterVec
	canceled  *prometheus.CounterVec
	exhausted *prometheus.CounterVec
	passes    *prometheus.CounterVec
	visited   *prometheus.CounterVec
	latency   *prometheus.HistogramVec

	startedBy   [len(updateTypes)]prometheus.Counter
	completedBy [len(updateTypes)]prometheus.Counter
	canceledBy  [len(updateTypes)]prometheus.Counter
	passesBy    [2]prometheus.Counter
	visitedBy   [2]prometheus.Counter
	latencyBy   [2]prometheus.Observer
}

var _ tweener.Observer = (*Observer)(nil)

// New creates an observer and registers its collectors with reg under
// namespace. A nil reg uses the default registerer.
func New(reg prometheus.Registerer, namespace string) (*Observer, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	o := &Observer{
		started: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tweens_started_total",
			Help:      "Tweens that entered active scheduling",
		}, []string{"update_type"}),
		completed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tweens_completed_total",
			Help:      "Tweens that completed",
		}, []string{"update_type"}),
		canceled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tweens_canceled_total",
			Help:      "Tweens canceled by handle, token, link or disposal",
		}, []string{"update_type"}),
		exhausted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "capacity_exhausted_total",
			Help:      "Build or Play calls rejected by a full table",
		}, []string{"table"}),
		passes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "advance_passes_total",
			Help:      "Scheduler passes run",
		}, []string{"phase"}),
		visited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "advance_visited_total",
			Help:      "Dispatch entries visited by scheduler passes",
		}, []string{"phase"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "advance_duration_seconds",
			Help:      "Wall time of one scheduler pass",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"phase"}),
	}
	var errs []error
	for _, c := range []prometheus.Collector{o.started, o.completed, o.canceled, o.exhausted, o.passes, o.visited, o.latency} {
		if err := reg.Register(c); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	for i, u := range updateTypes {
		o.startedBy[i] = o.started.WithLabelValues(u.String())
		o.completedBy[i] = o.completed.WithLabelValues(u.String())
		o.canceledBy[i] = o.canceled.WithLabelValues(u.String())
	}
	for _, p := range []tweener.Phase{tweener.PhaseUpdate, tweener.PhaseFixedUpdate} {
		o.passesBy[p] = o.passes.WithLabelValues(p.String())
		o.visitedBy[p] = o.visited.WithLabelValues(p.String())
		o.latencyBy[p] = o.latency.WithLabelValues(p.String())
	}
	return o, nil
}

func (o *Observer) TweenStarted(u tweener.UpdateType) { o.startedBy[u&3].Inc() }
func (o *Observer) TweenCompleted(u tweener.UpdateType) { o.completedBy[u&3].Inc() }
func (o *Observer) TweenCanceled(u tweener.UpdateType) { o.canceledBy[u&3].Inc() }

func (o *Observer) CapacityExhausted(table string) {
	o.exhausted.WithLabelValues(table).Inc()
}

func (o *Observer) Advanced(phase tweener.Phase, visited int, elapsed time.Duration) {
	p := phase & 1
	o.passesBy[p].Inc()
	o.visitedBy[p].Add(float64(visited))
	o.latencyBy[p].Observe(elapsed.Seconds())
}
