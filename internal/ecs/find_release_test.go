//go:build !ecsdebug

package ecs

import "testing"

func TestFindFirstWithFirstMatchWins(t *testing.T) {
	w := NewWorld()
	first := w.CreateEntity()
	Add(first, otherComp{})
	second := w.CreateEntity()
	Add(second, otherComp{})

	e, ok := FindFirstWith[otherComp](w.Entities())
	if !ok || e != first {
		t.Fatalf("expected first match %v, got %v", first, e)
	}
}
