package tweener

import (
	"fmt"

	"github.com/phanxgames/tweener/internal/freelist"
)

// RegistrationID identifies a dispatch entry. Registration and slot IDs are
// independent spaces.
type RegistrationID struct {
	index int32
	gen   uint32
}

// Index returns the entry position in the registry table.
func (id RegistrationID) Index() int { return int(id.index) }

func (id RegistrationID) String() string {
	return fmt.Sprintf("registration %d/%d", id.index, id.gen)
}

// slotOps are the per-record-type entry points the registry calls without
// knowing the record type. They are instantiations of generic functions, so
// storing them allocates nothing.
type slotOps struct {
	// advance runs one full tick for the slot.
	advance func(s *Scheduler, id SlotID)
	// compute runs the pure part of a tick and stores the outcome on the
	// record; it must only touch that record.
	compute func(s *Scheduler, id SlotID)
	// commit applies a stored outcome: callbacks and teardown.
	commit func(s *Scheduler, id SlotID)
	// linked completes or cancels the slot if its link equals link.
	linked func(s *Scheduler, id SlotID, link Link, complete bool)
}

type registration struct {
	slot  SlotID
	phase Phase
	born  uint64
	ops   slotOps
}

// Registry is the dispatch table walked by the scheduler every tick. An entry
// exists exactly while its slot is subject to per-tick advancement.
type Registry struct {
	entries []registration
	gens    []uint32
	free    *freelist.List
	epoch   uint64
}

// NewRegistry creates a registry with a fixed number of entries.
func NewRegistry(capacity int) *Registry {
	return &Registry{
		entries: make([]registration, capacity),
		gens:    make([]uint32, capacity),
		free:    freelist.New(capacity),
	}
}

// Register adds a dispatch entry for slot. Entries registered while a pass is
// running are first visited by the next pass.
func (r *Registry) Register(slot SlotID, phase Phase, ops slotOps) (RegistrationID, error) {
	i, ok := r.free.Acquire()
	if !ok {
		return RegistrationID{index: -1}, fmt.Errorf("registry of %d entries: %w", r.free.Cap(), ErrOutOfCapacity)
	}
	r.entries[i] = registration{slot: slot, phase: phase, born: r.epoch, ops: ops}
	return RegistrationID{index: int32(i), gen: r.gens[i]}, nil
}

// Unregister removes an entry. Removing an entry twice fails with
// ErrInvalidRegistration.
func (r *Registry) Unregister(id RegistrationID) error {
	i := int(id.index)
	if !r.free.InUse(i) || r.gens[i] != id.gen {
		return fmt.Errorf("%v: %w", id, ErrInvalidRegistration)
	}
	if err := r.free.Release(i); err != nil {
		return fmt.Errorf("%v: %w", id, err)
	}
	r.entries[i] = registration{}
	r.gens[i]++
	return nil
}

// Len returns the number of live entries.
func (r *Registry) Len() int { return r.free.Len() }

// Capacity returns the fixed number of entries.
func (r *Registry) Capacity() int { return r.free.Cap() }

// begin opens a pass and returns its limit: only entries born before the limit
// are visited, which keeps entries added during the pass out of it.
func (r *Registry) begin() uint64 {
	r.epoch++
	return r.epoch
}

// each calls fn for every live entry visible to the pass opened with limit, in
// table order. fn may register and unregister entries.
func (r *Registry) each(limit uint64, fn func(reg registration)) {
	for i, ok := r.free.Next(0); ok; i, ok = r.free.Next(i + 1) {
		reg := r.entries[i]
		if reg.born >= limit {
			continue
		}
		fn(reg)
	}
}

// tick advances every visible entry of phase and returns how many it visited.
func (r *Registry) tick(s *Scheduler, phase Phase) int {
	limit := r.begin()
	visited := 0
	for i, ok := r.free.Next(0); ok; i, ok = r.free.Next(i + 1) {
		reg := r.entries[i]
		if reg.phase != phase || reg.born >= limit {
			continue
		}
		visited++
		reg.ops.advance(s, reg.slot)
	}
	return visited
}

// cancelByLink completes or cancels every visible entry linked to link.
func (r *Registry) cancelByLink(s *Scheduler, link Link, complete bool) {
	r.each(r.begin(), func(reg registration) {
		reg.ops.linked(s, reg.slot, link, complete)
	})
}

// visible collects the entries of phase visible to a new pass, for the
// parallel advance which needs a stable list across its two passes.
func (r *Registry) visible(phase Phase, buf []registration) []registration {
	limit := r.begin()
	buf = buf[:0]
	r.each(limit, func(reg registration) {
		if reg.phase == phase {
			buf = append(buf, reg)
		}
	})
	return buf
}
