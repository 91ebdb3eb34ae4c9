package ecs

import (
	"fmt"
	"sort"
)

// EntityID uniquely identifies an entity in the world.
type EntityID uint64

// NilEntity is the zero value; no valid entity has this ID.
const NilEntity EntityID = 0

// ComponentType is a small integer key used to store/retrieve components.
type ComponentType uint8

// Component is implemented by every data struct stored on an entity.
// Type must not depend on the receiver's fields: the key of a kind is read
// from its zero value.
type Component interface {
	Type() ComponentType
}

// Entity owns at most one value of each component kind.
type Entity struct {
	ID         EntityID
	components map[ComponentType]any
}

// NewEntity returns an empty, unregistered entity.
func NewEntity(id EntityID) *Entity {
	return &Entity{ID: id, components: make(map[ComponentType]any)}
}

// Len returns the number of components attached to e.
func (e *Entity) Len() int { return len(e.components) }

// Types returns the keys of every attached component in ascending order.
func (e *Entity) Types() []ComponentType {
	types := make([]ComponentType, 0, len(e.components))
	for t := range e.components {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// HasType reports whether a component with key t is attached, whatever its kind.
func (e *Entity) HasType(t ComponentType) bool {
	_, ok := e.components[t]
	return ok
}

func (e *Entity) String() string {
	return fmt.Sprintf("entity(%d)", e.ID)
}

// keyOf returns the storage key for kind T.
func keyOf[T Component]() ComponentType {
	var zero T
	return zero.Type()
}

// slot fetches the stored *T for kind T. A value of another kind under the
// same key is a programming error and panics.
func slot[T Component](e *Entity) (*T, bool) {
	key := keyOf[T]()
	raw, ok := e.components[key]
	if !ok {
		return nil, false
	}
	ptr, ok := raw.(*T)
	if !ok {
		var zero T
		panic(&TypeMismatchError{
			Entity:   e.ID,
			Key:      key,
			Want:     fmt.Sprintf("%T", zero),
			Got:      fmt.Sprintf("%T", raw),
			Attached: e.Types(),
		})
	}
	return ptr, true
}

// Add attaches v to e, replacing any value of the same kind.
func Add[T Component](e *Entity, v T) {
	if e.components == nil {
		e.components = make(map[ComponentType]any)
	}
	e.components[keyOf[T]()] = &v
}

// Get returns a copy of e's T, or the zero value and false.
func Get[T Component](e *Entity) (T, bool) {
	ptr, ok := slot[T](e)
	if !ok {
		var zero T
		return zero, false
	}
	return *ptr, true
}

// GetMut returns a pointer to the T stored on e. Writes through it are
// visible to every later accessor until the component is removed.
func GetMut[T Component](e *Entity) (*T, bool) {
	return slot[T](e)
}

// Has reports whether e carries a T.
func Has[T Component](e *Entity) bool {
	_, ok := slot[T](e)
	return ok
}

// Remove detaches e's T and hands it to the caller. It fails with
// ErrComponentNotFound when e has no T, leaving e untouched.
func Remove[T Component](e *Entity) (T, error) {
	ptr, ok := slot[T](e)
	if !ok {
		var zero T
		return zero, missing[T](e)
	}
	delete(e.components, keyOf[T]())
	return *ptr, nil
}

// Detach removes e's T, lets fn work on it in isolation and puts it back.
// The value is reinserted on every way out of fn, panics included, so e never
// ends up without its T because of something fn did.
func Detach[T Component](e *Entity, fn func(*T) error) error {
	v, err := Remove[T](e)
	if err != nil {
		return err
	}
	defer func() { Add(e, v) }()
	return fn(&v)
}
