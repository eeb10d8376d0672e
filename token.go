package tweener

import "fmt"

// CancellationToken cancels every tween it is associated with. The zero value
// is ready to use; its shared state is created the first time a tween is built
// with it and freed once the last tween built with it has ended, after which
// the token is fresh again and can be reused.
//
// A token must not be copied after first use. Like the rest of the package it
// is not safe for concurrent use.
type CancellationToken struct {
	state *tokenState
}

type tokenState struct {
	cancelled bool
	refs      int // playing tweens
	holds     int // committed tweens, playing or not
	owner     *CancellationToken
	alloc     *tokenAllocator
	freed     bool
}

// Cancel flags every associated tween for cancellation. Each stops, without
// callbacks, the next time it is advanced. Safe to call repeatedly and on a
// token that was never used.
func (t *CancellationToken) Cancel() {
	if t == nil || t.state == nil {
		return
	}
	t.state.cancelled = true
}

// IsCancelled reports whether Cancel was called since the shared state was
// created. A never-used token is not cancelled.
func (t *CancellationToken) IsCancelled() bool {
	return t != nil && t.state != nil && t.state.cancelled
}

// Refs returns the number of playing tweens holding the token.
func (t *CancellationToken) Refs() int {
	if t == nil || t.state == nil {
		return 0
	}
	return t.state.refs
}

// createStateOnce returns the token's shared state, allocating it on first use.
func (t *CancellationToken) createStateOnce(a *tokenAllocator) *tokenState {
	if t.state != nil {
		return t.state
	}
	t.state = a.malloc(t)
	return t.state
}

// hold records a committed tween referencing the state.
func (st *tokenState) hold() {
	st.holds++
}

// unhold drops a committed tween's reference and frees the state when it was
// the last one.
func (st *tokenState) unhold() error {
	if st.holds <= 0 {
		return fmt.Errorf("unhold with %d holders: %w", st.holds, ErrUnbalancedRefcount)
	}
	st.holds--
	if st.holds == 0 {
		if st.refs != 0 {
			return fmt.Errorf("last holder gone with %d references: %w", st.refs, ErrUnbalancedRefcount)
		}
		st.free()
	}
	return nil
}

// attach counts a tween entering active scheduling.
func (st *tokenState) attach() {
	st.refs++
}

// detach releases an active tween's reference.
func (st *tokenState) detach() error {
	if st.refs <= 0 {
		return fmt.Errorf("detach with %d references: %w", st.refs, ErrUnbalancedRefcount)
	}
	st.refs--
	return nil
}

func (st *tokenState) free() {
	if st.freed {
		return
	}
	st.freed = true
	if st.owner != nil && st.owner.state == st {
		st.owner.state = nil
	}
	st.owner = nil
	if st.alloc != nil {
		st.alloc.release(st)
		st.alloc = nil
	}
}

// tokenAllocator tracks live token states independently of the slot arena so
// a scheduler can account for and reclaim them on disposal.
type tokenAllocator struct {
	live map[*tokenState]struct{}
}

func newTokenAllocator() *tokenAllocator {
	return &tokenAllocator{live: make(map[*tokenState]struct{})}
}

func (a *tokenAllocator) malloc(owner *CancellationToken) *tokenState {
	st := &tokenState{owner: owner, alloc: a}
	a.live[st] = struct{}{}
	return st
}

func (a *tokenAllocator) release(st *tokenState) {
	delete(a.live, st)
}

// freeAll frees every state still live and returns how many there were.
func (a *tokenAllocator) freeAll() int {
	n := len(a.live)
	for st := range a.live {
		st.refs = 0
		st.holds = 0
		st.free()
	}
	return n
}

func (a *tokenAllocator) len() int { return len(a.live) }
