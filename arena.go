package tweener

import (
	"fmt"

	"github.com/phanxgames/tweener/internal/freelist"
)

// SlotID identifies an arena slot. The generation changes every time the slot
// is freed, so an ID kept past its tween's lifetime never aliases a later
// occupant.
type SlotID struct {
	index int32
	gen   uint32
}

// NoSlot is the SlotID of a tween that was never committed.
var NoSlot = SlotID{index: -1}

// Index returns the slot position. Indices are reused; generations are not.
func (id SlotID) Index() int { return int(id.index) }

// Generation returns the slot generation the ID was issued for.
func (id SlotID) Generation() uint32 { return id.gen }

func (id SlotID) String() string {
	return fmt.Sprintf("slot %d/%d", id.index, id.gen)
}

// Arena is the fixed-capacity, type-erased store of tween records. It holds
// records of any value and context type behind a uniform SlotID and performs
// no type checking of its own: the caller decides how a slot is interpreted
// and must read it back as the type it wrote. Use readRecord for checked typed
// access.
type Arena struct {
	records []any
	gens    []uint32
	free    *freelist.List
}

// NewArena creates an arena with a fixed number of slots.
func NewArena(capacity int) *Arena {
	return &Arena{
		records: make([]any, capacity),
		gens:    make([]uint32, capacity),
		free:    freelist.New(capacity),
	}
}

// Allocate reserves a free slot. It fails with ErrOutOfCapacity when every
// slot is occupied; the arena never grows.
func (a *Arena) Allocate() (SlotID, error) {
	i, ok := a.free.Acquire()
	if !ok {
		return NoSlot, fmt.Errorf("arena of %d slots: %w", a.free.Cap(), ErrOutOfCapacity)
	}
	return SlotID{index: int32(i), gen: a.gens[i]}, nil
}

func (a *Arena) check(id SlotID) error {
	i := int(id.index)
	if !a.free.InUse(i) || a.gens[i] != id.gen {
		return fmt.Errorf("%v: %w", id, ErrInvalidSlot)
	}
	return nil
}

// Write stores rec in an occupied slot.
func (a *Arena) Write(id SlotID, rec any) error {
	if err := a.check(id); err != nil {
		return err
	}
	a.records[id.index] = rec
	return nil
}

// Read returns the record of an occupied slot. Records are stored by
// reference, so a pointer record read back may be mutated in place.
func (a *Arena) Read(id SlotID) (any, error) {
	if err := a.check(id); err != nil {
		return nil, err
	}
	return a.records[id.index], nil
}

// Free returns a slot to the pool. Freeing a free slot fails with
// ErrDoubleFree; freeing through an ID whose slot was reused fails with
// ErrInvalidSlot. Neither changes the arena.
func (a *Arena) Free(id SlotID) error {
	i := int(id.index)
	if i < 0 || i >= len(a.records) {
		return fmt.Errorf("%v: %w", id, ErrInvalidSlot)
	}
	if !a.free.InUse(i) {
		return fmt.Errorf("%v: %w", id, ErrDoubleFree)
	}
	if a.gens[i] != id.gen {
		return fmt.Errorf("%v: %w", id, ErrInvalidSlot)
	}
	if err := a.free.Release(i); err != nil {
		return fmt.Errorf("%v: %w", id, err)
	}
	a.records[i] = nil
	a.gens[i]++
	return nil
}

// Len returns the number of occupied slots.
func (a *Arena) Len() int { return a.free.Len() }

// Capacity returns the fixed number of slots.
func (a *Arena) Capacity() int { return a.free.Cap() }

// occupied returns the IDs of all occupied slots in index order.
func (a *Arena) occupied() []SlotID {
	ids := make([]SlotID, 0, a.free.Len())
	for i, ok := a.free.Next(0); ok; i, ok = a.free.Next(i + 1) {
		ids = append(ids, SlotID{index: int32(i), gen: a.gens[i]})
	}
	return ids
}

// readRecord is the typed side of the type-erasure boundary: it fails with
// ErrRecordType instead of reinterpreting a slot as a different record type.
func readRecord[R any](a *Arena, id SlotID) (R, error) {
	var zero R
	rec, err := a.Read(id)
	if err != nil {
		return zero, err
	}
	r, ok := rec.(R)
	if !ok {
		return zero, fmt.Errorf("%v holds %T: %w", id, rec, ErrRecordType)
	}
	return r, nil
}
