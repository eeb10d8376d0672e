package tweener

import (
	"fmt"
	"math"
	"reflect"
)

// Builder collects the configuration of a tween of value type V whose
// callbacks receive a context of type C. Nothing is allocated in the
// scheduler until Build or Play.
type Builder[V, C any] struct {
	s *Scheduler

	start    V
	end      V
	duration float64
	delay    float64

	ease       Ease
	curve      Curve
	lerp       Lerp[V]
	updateType UpdateType

	link  Link
	token *CancellationToken

	ctx           C
	onValueChange func(ctx C, value V)
	onComplete    func(ctx C)
}

// NewBuilder returns a builder interpolating with lerp. The duration defaults
// to one second.
func NewBuilder[V, C any](s *Scheduler, lerp Lerp[V]) *Builder[V, C] {
	return &Builder[V, C]{s: s, lerp: lerp, duration: 1}
}

// Value returns a builder from start to end with ctx as the callback context.
// When ctx implements Link the tween is also linked to it, unless ctx is a
// nil pointer.
func Value[V, C any](s *Scheduler, ctx C, start, end V, lerp Lerp[V]) *Builder[V, C] {
	b := NewBuilder[V, C](s, lerp).
		SetContext(ctx).
		SetStartValue(start).
		SetEndValue(end)
	if l, ok := any(ctx).(Link); ok && !nilLink(l) {
		b.link = l
	}
	return b
}

// nilLink reports whether l is nil or wraps a nil reference.
func nilLink(l Link) bool {
	if l == nil {
		return true
	}
	v := reflect.ValueOf(l)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Float returns a builder tweening a float64.
func Float[C any](s *Scheduler, ctx C, start, end float64) *Builder[float64, C] {
	return Value(s, ctx, start, end, LerpFloat)
}

// Vector2 returns a builder tweening a Vec2.
func Vector2[C any](s *Scheduler, ctx C, start, end Vec2) *Builder[Vec2, C] {
	return Value(s, ctx, start, end, LerpVec2)
}

// Vector3 returns a builder tweening a Vec3.
func Vector3[C any](s *Scheduler, ctx C, start, end Vec3) *Builder[Vec3, C] {
	return Value(s, ctx, start, end, LerpVec3)
}

// Rotation returns a builder tweening a Quat along the shortest arc.
func Rotation[C any](s *Scheduler, ctx C, start, end Quat) *Builder[Quat, C] {
	return Value(s, ctx, start, end, SlerpQuat)
}

// RGBA returns a builder tweening a Color.
func RGBA[C any](s *Scheduler, ctx C, start, end Color) *Builder[Color, C] {
	return Value(s, ctx, start, end, LerpColor)
}

func (b *Builder[V, C]) SetStartValue(v V) *Builder[V, C] {
	b.start = v
	return b
}

func (b *Builder[V, C]) SetEndValue(v V) *Builder[V, C] {
	b.end = v
	return b
}

// SetDuration sets the length of the tween in seconds. Zero resolves to the
// end value on the first tick after the delay.
func (b *Builder[V, C]) SetDuration(seconds float64) *Builder[V, C] {
	b.duration = seconds
	return b
}

// SetDelay sets the time in seconds before the first value change.
func (b *Builder[V, C]) SetDelay(seconds float64) *Builder[V, C] {
	b.delay = seconds
	return b
}

func (b *Builder[V, C]) SetEase(e Ease) *Builder[V, C] {
	b.ease = e
	return b
}

// SetCurve remaps normalized progress before the ease is applied.
func (b *Builder[V, C]) SetCurve(c Curve) *Builder[V, C] {
	b.curve = c
	return b
}

// SetUpdateType selects the tick phase and time scale driving the tween.
func (b *Builder[V, C]) SetUpdateType(u UpdateType) *Builder[V, C] {
	b.updateType = u
	return b
}

// SetLink ties the tween to an owner. Once the owner reports disposed the
// tween is canceled on its next tick. A nil link, or one wrapping a nil
// pointer, removes the tie.
func (b *Builder[V, C]) SetLink(l Link) *Builder[V, C] {
	if nilLink(l) {
		l = nil
	}
	b.link = l
	return b
}

// SetCancellationToken associates the tween with t. The token must outlive
// the builder calls; it is shared by reference.
func (b *Builder[V, C]) SetCancellationToken(t *CancellationToken) *Builder[V, C] {
	b.token = t
	return b
}

func (b *Builder[V, C]) SetContext(ctx C) *Builder[V, C] {
	b.ctx = ctx
	return b
}

func (b *Builder[V, C]) SetOnValueChange(fn func(ctx C, value V)) *Builder[V, C] {
	b.onValueChange = fn
	return b
}

func (b *Builder[V, C]) SetOnComplete(fn func(ctx C)) *Builder[V, C] {
	b.onComplete = fn
	return b
}

// SetLerp replaces the interpolation function.
func (b *Builder[V, C]) SetLerp(fn Lerp[V]) *Builder[V, C] {
	b.lerp = fn
	return b
}

func (b *Builder[V, C]) validate() error {
	if b.s == nil || b.s.disposed {
		return ErrDisposed
	}
	if b.duration < 0 || math.IsNaN(b.duration) || math.IsInf(b.duration, 0) {
		return fmt.Errorf("duration %v: %w", b.duration, ErrInvalidDuration)
	}
	if b.delay < 0 || math.IsNaN(b.delay) || math.IsInf(b.delay, 0) {
		return fmt.Errorf("delay %v: %w", b.delay, ErrInvalidDelay)
	}
	if b.lerp == nil {
		return ErrNoLerp
	}
	return nil
}

// Build commits the tween to the scheduler in the Idle state. It fails
// without side effects on invalid configuration or when the arena is full.
// The builder may be reused afterwards.
func (b *Builder[V, C]) Build() (Tween[V, C], error) {
	if err := b.validate(); err != nil {
		return Tween[V, C]{}, fmt.Errorf("build tween: %w", err)
	}
	s := b.s
	id, err := s.arena.Allocate()
	if err != nil {
		s.capacityExhausted("arena", err)
		return Tween[V, C]{}, fmt.Errorf("build tween: %w", err)
	}
	in := &instance[V, C]{
		slot:          id,
		elapsed:       -b.delay,
		duration:      b.duration,
		start:         b.start,
		end:           b.end,
		value:         b.start,
		ease:          b.ease,
		curve:         b.curve,
		lerp:          b.lerp,
		updateType:    b.updateType,
		state:         StateIdle,
		link:          b.link,
		onValueChange: b.onValueChange,
		onComplete:    b.onComplete,
		ctx:           b.ctx,
	}
	if err := s.arena.Write(id, in); err != nil {
		s.fault("write slot", err)
		if ferr := s.arena.Free(id); ferr != nil {
			s.fault("free slot", ferr)
		}
		return Tween[V, C]{}, fmt.Errorf("build tween: %w", err)
	}
	if b.token != nil {
		in.token = b.token.createStateOnce(s.tokens)
		in.token.hold()
	}
	return Tween[V, C]{s: s, id: id, in: in}, nil
}

// Play builds the tween and starts it. If the dispatch registry is full the
// slot is released again and the error returned.
func (b *Builder[V, C]) Play() (Tween[V, C], error) {
	t, err := b.Build()
	if err != nil {
		return t, err
	}
	if err := t.Play(); err != nil {
		t.Cancel()
		return Tween[V, C]{}, err
	}
	return t, nil
}
