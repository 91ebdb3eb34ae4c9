package ecs

import (
	"fmt"

	"github.com/rotisserie/eris"
)

// ErrComponentNotFound is returned when a component that must be present is not.
var ErrComponentNotFound = eris.New("component not found")

func missing[T Component](e *Entity) error {
	var zero T
	return eris.Wrapf(ErrComponentNotFound, "%T (key %d) on %s", zero, keyOf[T](), e)
}

// TypeMismatchError reports a stored value whose kind differs from the kind
// asked for under the same key. It is raised as a panic: two component kinds
// sharing a key is a bug, not a runtime condition.
type TypeMismatchError struct {
	Entity   EntityID
	Key      ComponentType
	Want     string
	Got      string
	Attached []ComponentType // every key on the entity at the time
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("ecs: entity %d key %d holds %s, asked for %s (attached %v)", e.Entity, e.Key, e.Got, e.Want, e.Attached)
}
