package ecs

// World is the ordered entity collection. Order is creation order and is the
// order every query and search walks.
type World struct {
	nextID   EntityID
	entities []*Entity
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{nextID: 1}
}

// CreateEntity mints a new empty entity and appends it to the collection.
func (w *World) CreateEntity() *Entity {
	e := NewEntity(w.nextID)
	w.nextID++
	w.entities = append(w.entities, e)
	return e
}

// Entities returns the collection in order. The slice is shared with w.
func (w *World) Entities() []*Entity {
	return w.entities
}

// Len returns the number of entities.
func (w *World) Len() int { return len(w.entities) }

// Query returns, in collection order, every entity that has every listed
// component type.
func (w *World) Query(types ...ComponentType) []*Entity {
	if len(types) == 0 {
		return nil
	}
	var result []*Entity
	for _, e := range w.entities {
		match := true
		for _, t := range types {
			if !e.HasType(t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, e)
		}
	}
	return result
}
