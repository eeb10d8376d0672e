// Package freelist implements the fixed-capacity free-index pool shared by the
// slot arena and the dispatch registry.
//
// Free indices are kept on a stack so the most recently released index is
// handed out first. Occupancy is tracked in a bitset, which makes double
// release detectable and lets callers walk the in-use indices in ascending
// order without scanning empty entries.
package freelist

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

var (
	// ErrOutOfRange is returned for an index outside [0, Cap()).
	ErrOutOfRange = errors.New("freelist: index out of range")
	// ErrNotInUse is returned when releasing an index that is already free.
	ErrNotInUse = errors.New("freelist: index not in use")
)

// List is a fixed-capacity pool of integer indices. Not safe for concurrent
// mutation.
type List struct {
	free []int32
	used *bitset.BitSet
	cap  int
}

// New returns a List with every index in [0, capacity) free. Indices are
// handed out in ascending order until the first release.
func New(capacity int) *List {
	if capacity < 0 {
		capacity = 0
	}
	l := &List{
		free: make([]int32, capacity),
		used: bitset.New(uint(capacity)),
		cap:  capacity,
	}
	l.fill()
	return l
}

func (l *List) fill() {
	l.free = l.free[:l.cap]
	for i := range l.free {
		l.free[i] = int32(l.cap - 1 - i)
	}
}

// Acquire pops a free index. ok is false when the pool is exhausted.
func (l *List) Acquire() (index int, ok bool) {
	n := len(l.free)
	if n == 0 {
		return -1, false
	}
	index = int(l.free[n-1])
	l.free = l.free[:n-1]
	l.used.Set(uint(index))
	return index, true
}

// Release returns index to the pool.
func (l *List) Release(index int) error {
	if index < 0 || index >= l.cap {
		return fmt.Errorf("release %d: %w", index, ErrOutOfRange)
	}
	if !l.used.Test(uint(index)) {
		return fmt.Errorf("release %d: %w", index, ErrNotInUse)
	}
	l.used.Clear(uint(index))
	l.free = append(l.free, int32(index))
	return nil
}

// InUse reports whether index is currently acquired.
func (l *List) InUse(index int) bool {
	if index < 0 || index >= l.cap {
		return false
	}
	return l.used.Test(uint(index))
}

// Next returns the smallest in-use index >= from.
func (l *List) Next(from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	if from >= l.cap {
		return -1, false
	}
	i, ok := l.used.NextSet(uint(from))
	if !ok || int(i) >= l.cap {
		return -1, false
	}
	return int(i), true
}

// Len returns the number of indices in use.
func (l *List) Len() int { return l.cap - len(l.free) }

// Cap returns the fixed capacity.
func (l *List) Cap() int { return l.cap }

// Reset marks every index free again.
func (l *List) Reset() {
	l.used.ClearAll()
	l.fill()
}
