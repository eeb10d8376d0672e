package tweener

import "errors"

var (
	// ErrOutOfCapacity is returned when the arena or the registry has no free
	// entry left. Capacity is fixed at scheduler construction.
	ErrOutOfCapacity = errors.New("tweener: out of capacity")

	// ErrInvalidSlot is returned for access to a slot that is free, was never
	// allocated, or has been reused since the handle was issued.
	ErrInvalidSlot = errors.New("tweener: invalid slot")

	// ErrDoubleFree is returned when a slot is freed twice.
	ErrDoubleFree = errors.New("tweener: slot already free")

	// ErrInvalidRegistration is returned when a registration is removed twice
	// or never existed.
	ErrInvalidRegistration = errors.New("tweener: invalid registration")

	// ErrUnbalancedRefcount is returned when a cancellation token reference is
	// released more times than it was acquired.
	ErrUnbalancedRefcount = errors.New("tweener: unbalanced cancellation refcount")

	// ErrRecordType is returned when a slot is read back as a record type other
	// than the one written into it.
	ErrRecordType = errors.New("tweener: slot record type mismatch")

	// ErrInvalidDuration is returned by Build for a negative or non-finite
	// duration.
	ErrInvalidDuration = errors.New("tweener: duration must be finite and non-negative")

	// ErrInvalidDelay is returned by Build for a negative or non-finite delay.
	ErrInvalidDelay = errors.New("tweener: delay must be finite and non-negative")

	// ErrNoLerp is returned by Build when no interpolation function is set.
	ErrNoLerp = errors.New("tweener: no interpolation function")

	// ErrDisposed is returned by Build after the scheduler has been disposed.
	ErrDisposed = errors.New("tweener: scheduler disposed")
)
