package tweener

// Transform is a minimal spatial target for the convenience tweens. It is a
// Link: disposing it cancels every tween built by the helpers below on their
// next tick.
type Transform struct {
	Owner
	Position Vec3
	Rotation Quat
	Scale    Vec3

	dirty bool
}

// NewTransform returns a transform at the origin with identity rotation and
// unit scale.
func NewTransform(name string) *Transform {
	return &Transform{
		Owner:    Owner{Name: name},
		Rotation: QuatIdentity,
		Scale:    Vec3{1, 1, 1},
	}
}

// MarkDirty flags the transform as changed. Tweens call it on every write.
func (t *Transform) MarkDirty() { t.dirty = true }

// Changed reports whether the transform was written since the last call and
// clears the flag.
func (t *Transform) Changed() bool {
	d := t.dirty
	t.dirty = false
	return d
}

// Fader is a target with a single alpha channel, such as a UI group.
type Fader struct {
	Owner
	Alpha float64
}

// NewFader returns an opaque fader.
func NewFader(name string) *Fader {
	return &Fader{Owner: Owner{Name: name}, Alpha: 1}
}

// Setters are package-level so building a tween does not allocate a closure.
var (
	setPosition = func(t *Transform, v Vec3) { t.Position = v; t.MarkDirty() }
	setScale    = func(t *Transform, v Vec3) { t.Scale = v; t.MarkDirty() }
	setRotation = func(t *Transform, v Quat) { t.Rotation = v; t.MarkDirty() }
	setAlpha    = func(f *Fader, v float64) { f.Alpha = v }
	setField    = func(p *float64, v float64) { *p = v }
)

// TweenPosition returns a builder moving t from its current position to to.
func TweenPosition(s *Scheduler, t *Transform, to Vec3) *Builder[Vec3, *Transform] {
	return Vector3(s, t, t.Position, to).SetOnValueChange(setPosition)
}

// TweenDirection returns a builder moving t by offset from its current
// position.
func TweenDirection(s *Scheduler, t *Transform, offset Vec3) *Builder[Vec3, *Transform] {
	return Vector3(s, t, t.Position, t.Position.Add(offset)).SetOnValueChange(setPosition)
}

// TweenLocalScale returns a builder scaling t from its current scale to to.
func TweenLocalScale(s *Scheduler, t *Transform, to Vec3) *Builder[Vec3, *Transform] {
	return Vector3(s, t, t.Scale, to).SetOnValueChange(setScale)
}

// TweenRotation returns a builder rotating t along the shortest arc from its
// current rotation to to.
func TweenRotation(s *Scheduler, t *Transform, to Quat) *Builder[Quat, *Transform] {
	return Rotation(s, t, t.Rotation, to).SetOnValueChange(setRotation)
}

// TweenAlpha returns a builder fading f from its current alpha to to.
func TweenAlpha(s *Scheduler, f *Fader, to float64) *Builder[float64, *Fader] {
	return Float(s, f, f.Alpha, to).SetOnValueChange(setAlpha)
}

// TweenField returns a builder animating *field from its current value to
// to. The tween is linked to owner, which may be nil.
func TweenField(s *Scheduler, owner Link, field *float64, to float64) *Builder[float64, *float64] {
	return Float(s, field, *field, to).
		SetOnValueChange(setField).
		SetLink(owner)
}
