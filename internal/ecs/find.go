package ecs

import "fmt"

// FindFirstWith returns the first entity in entities that carries a T.
// Callers use it for singletons; with debugChecks on, a second match panics.
func FindFirstWith[T Component](entities []*Entity) (*Entity, bool) {
	for i, e := range entities {
		if !Has[T](e) {
			continue
		}
		if debugChecks {
			assertUnique[T](e, entities[i+1:])
		}
		return e, true
	}
	return nil, false
}

// FindComponent returns a copy of the first T found in entities.
func FindComponent[T Component](entities []*Entity) (T, bool) {
	e, ok := FindFirstWith[T](entities)
	if !ok {
		var zero T
		return zero, false
	}
	return Get[T](e)
}

// FindComponentMut returns a pointer to the first T found in entities.
func FindComponentMut[T Component](entities []*Entity) (*T, bool) {
	e, ok := FindFirstWith[T](entities)
	if !ok {
		return nil, false
	}
	return GetMut[T](e)
}

func assertUnique[T Component](first *Entity, rest []*Entity) {
	for _, e := range rest {
		if Has[T](e) {
			var zero T
			panic(fmt.Sprintf("ecs: %T expected on one entity, found on %s and %s", zero, first, e))
		}
	}
}
