package tweener

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3D vector used for positions, scales and directions.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Quat is a rotation quaternion. The zero value is not a valid rotation; use
// QuatIdentity.
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity is the no-rotation quaternion.
var QuatIdentity = Quat{0, 0, 0, 1}

// UpdateType selects which tick phase drives a tween and whether it reads the
// scaled or the unscaled delta time. Bit 0 marks fixed-step, bit 1 unscaled.
type UpdateType uint8

const (
	Update              UpdateType = iota // per-frame, scaled delta
	FixedUpdate                           // fixed-step, scaled delta
	UnscaledUpdate                        // per-frame, unscaled delta
	UnscaledFixedUpdate                   // fixed-step, unscaled delta
)

// Phase returns the tick phase that advances tweens of this update type.
func (u UpdateType) Phase() Phase {
	if u&1 != 0 {
		return PhaseFixedUpdate
	}
	return PhaseUpdate
}

// Unscaled reports whether the update type ignores the time scale.
func (u UpdateType) Unscaled() bool { return u&2 != 0 }

func (u UpdateType) String() string {
	switch u {
	case Update:
		return "update"
	case FixedUpdate:
		return "fixed"
	case UnscaledUpdate:
		return "unscaled"
	case UnscaledFixedUpdate:
		return "unscaled-fixed"
	default:
		return "unknown"
	}
}

// Phase identifies one kind of scheduling pass.
type Phase uint8

const (
	PhaseUpdate      Phase = iota // once per rendered frame
	PhaseFixedUpdate              // once per fixed simulation step
)

func (p Phase) String() string {
	if p == PhaseFixedUpdate {
		return "fixed"
	}
	return "update"
}

// State is the lifecycle state of a tween.
type State uint8

const (
	StateIdle         State = iota // built, Play not called
	StateAwaitingPlay              // registered, not yet visited by a tick
	StatePlaying                   // advanced every matching tick
	StatePaused                    // registered, time frozen
	StateCompleted                 // terminal, on-complete fired
	StateCanceled                  // terminal, no callbacks
)

var stateNames = [...]string{"idle", "awaiting-play", "playing", "paused", "completed", "canceled"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Terminal reports whether the state is Completed or Canceled.
func (s State) Terminal() bool { return s == StateCompleted || s == StateCanceled }

// Link is an external owner whose disappearance cancels every tween linked to
// it. The check runs once per tween per tick and must be cheap and free of side
// effects. Links are compared with == by the bulk operations, so
// implementations should be pointers or comparable structs.
type Link interface {
	IsDisposed() bool
}

// Owner is a minimal Link: a named object that can be disposed once.
type Owner struct {
	Name     string
	disposed bool
}

// NewOwner creates a live owner.
func NewOwner(name string) *Owner {
	return &Owner{Name: name}
}

// Dispose marks the owner gone. Tweens linked to it cancel on their next tick.
func (o *Owner) Dispose() { o.disposed = true }

// IsDisposed reports whether Dispose has been called.
func (o *Owner) IsDisposed() bool { return o.disposed }
