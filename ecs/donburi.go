package ecs

import (
	"github.com/phanxgames/tweener"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EntityLink links tweens to a Donburi entity. It is comparable, so two links
// built for the same world and entity are equal and match in the scheduler's
// bulk operations.
type EntityLink struct {
	World  donburi.World
	Entity donburi.Entity
}

// Link returns the link for entity in world.
func Link(world donburi.World, entity donburi.Entity) EntityLink {
	return EntityLink{World: world, Entity: entity}
}

// IsDisposed reports whether the entity is no longer valid in its world.
func (l EntityLink) IsDisposed() bool {
	return l.World == nil || !l.World.Valid(l.Entity)
}

var _ tweener.Link = EntityLink{}

// CancelEntity cancels every playing tween linked to entity, without
// callbacks.
func CancelEntity(s *tweener.Scheduler, world donburi.World, entity donburi.Entity) {
	s.CancelAllWithLink(Link(world, entity))
}

// CompleteEntity completes every playing tween linked to entity.
func CompleteEntity(s *tweener.Scheduler, world donburi.World, entity donburi.Entity) {
	s.CompleteAllWithLink(Link(world, entity))
}

// CompletionEvent is published when a tween using PublishCompletion as its
// on-complete callback finishes.
type CompletionEvent struct {
	Entity donburi.Entity
}

// CompletionEventType is the Donburi event type for tween completions.
// Events are queued; call ProcessEvents from a system to deliver them.
var CompletionEventType = events.NewEventType[CompletionEvent]()

// PublishCompletion is an on-complete callback for tweens whose context is an
// EntityLink.
func PublishCompletion(l EntityLink) {
	if l.World == nil {
		return
	}
	CompletionEventType.Publish(l.World, CompletionEvent{Entity: l.Entity})
}
