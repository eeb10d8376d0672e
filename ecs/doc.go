// Package ecs ties tweens to [Donburi] entities.
//
// [Link] returns a [tweener.Link] that reports disposed once the entity has
// been removed from its world, so tweens linked to an entity stop on their
// next tick without any cleanup system. Completion can be forwarded into the
// world as a typed event with [PublishCompletion]:
//
//	link := ecs.Link(world, entity)
//	tweener.Float(s, link, 0, 1).
//		SetOnValueChange(setOpacity).
//		SetOnComplete(ecs.PublishCompletion).
//		Play()
//
//	ecs.CompletionEventType.Subscribe(world, onFaded)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
