// Package tweener is an allocation-free tween scheduler for games built on
// [Ebitengine] or any other fixed-loop host.
//
// A tween animates a value from a start to an end over a duration, calling a
// value-change callback every tick and a completion callback at the end.
// Tweens are committed into a fixed-capacity slot arena and advanced by a
// [Scheduler] through a dispatch registry, so steady-state ticking performs
// no heap allocation.
//
// # Quick start
//
//	s := tweener.NewScheduler(tweener.Config{})
//	d := tweener.NewDriver(s, tweener.DriverConfig{})
//
//	hero := tweener.NewTransform("hero")
//	tweener.TweenPosition(s, hero, tweener.Vec3{X: 100}).
//		SetDuration(0.5).
//		SetEase(tweener.OutBack).
//		Play()
//
//	// once per frame:
//	d.Frame(1.0 / 60)
//
// With Ebitengine, the ebitenhost package wraps a [Driver] in an
// ebiten.Game.
//
// # Building tweens
//
// [Float], [Vector2], [Vector3], [Rotation] and [RGBA] return a [Builder] for
// the common value types; [Value] and [NewBuilder] accept any value type with
// a [Lerp]. Build commits the tween in the idle state, Play commits and
// starts it. The returned [Tween] handle can pause, resume, cancel or
// complete it, and stays safe to use after its slot has been reused.
//
// Eases come from [gween]; the flash family and the endpoint pinning are
// local. A [Curve] remaps progress before the ease.
//
// # Cancellation
//
// A tween stops without callbacks when its [Link] reports disposed, when a
// shared [CancellationToken] is cancelled, or when the scheduler is
// disposed. [Scheduler.CancelAllWithLink] and
// [Scheduler.CompleteAllWithLink] act on every playing tween of one owner.
// The ecs package provides a [Donburi] entity link.
//
// # Observability
//
// [Config] takes a zap logger and an [Observer]. [BasicObserver] counts
// events with atomics; the promobserver package exports them to Prometheus.
// Debug mode logs per-pass stats and panics on internal contract
// violations.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package tweener
