package ecs

import "testing"

func TestCreateEntity(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	if e.ID == NilEntity {
		t.Fatal("expected non-nil entity ID")
	}
	if e.Len() != 0 {
		t.Fatal("new entities must be empty")
	}
	if w.Len() != 1 || w.Entities()[0] != e {
		t.Fatal("the created entity should be in the world")
	}
}

func TestEntitiesKeepCreationOrder(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()
	c := w.CreateEntity()

	got := w.Entities()
	if len(got) != 3 || got[0] != a || got[1] != b || got[2] != c {
		t.Fatalf("entities out of order: %v", got)
	}
	if a.ID >= b.ID || b.ID >= c.ID {
		t.Fatal("IDs should increase with creation")
	}
}

func TestQueryFiltersCorrectly(t *testing.T) {
	w := NewWorld()

	// entity with only A
	onlyA := w.CreateEntity()
	Add(onlyA, testComp{})

	// entity with both A and B
	both := w.CreateEntity()
	Add(both, testComp{})
	Add(both, otherComp{})

	results := w.Query(ComponentType(1), ComponentType(2))
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0] != both {
		t.Fatalf("expected %v in results, got %v", both, results[0])
	}

	results = w.Query(ComponentType(1))
	if len(results) != 2 || results[0] != onlyA || results[1] != both {
		t.Fatalf("query should follow collection order, got %v", results)
	}
}

func TestQueryNoTypes(t *testing.T) {
	w := NewWorld()
	w.CreateEntity()
	if got := w.Query(); got != nil {
		t.Fatalf("expected nil for an empty query, got %v", got)
	}
}

func TestFindFirstWith(t *testing.T) {
	w := NewWorld()
	w.CreateEntity()
	tagged := w.CreateEntity()
	Add(tagged, otherComp{})

	e, ok := FindFirstWith[otherComp](w.Entities())
	if !ok || e != tagged {
		t.Fatalf("expected %v, got %v (ok=%v)", tagged, e, ok)
	}
	if _, ok := FindFirstWith[testComp](w.Entities()); ok {
		t.Fatal("no entity has testComp; expected absence")
	}
}

func TestFindComponentVariants(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	Add(e, testComp{val: 3})

	tc, ok := FindComponent[testComp](w.Entities())
	if !ok || tc.val != 3 {
		t.Fatalf("FindComponent = %+v, %v", tc, ok)
	}

	p, ok := FindComponentMut[testComp](w.Entities())
	if !ok {
		t.Fatal("FindComponentMut should find the component")
	}
	p.val = 4
	if tc, _ := Get[testComp](e); tc.val != 4 {
		t.Fatalf("mutation through FindComponentMut lost, got %d", tc.val)
	}

	if _, ok := FindComponentMut[otherComp](w.Entities()); ok {
		t.Fatal("expected absence for otherComp")
	}
}

func TestFindFirstWithEmpty(t *testing.T) {
	if _, ok := FindFirstWith[testComp](nil); ok {
		t.Fatal("empty collection must report absence")
	}
}
