package factory

import (
	"sprite-ecs/internal/component"
	"sprite-ecs/internal/ecs"
	"sprite-ecs/internal/render"
	"time"
)

// NewResources creates the resource entity holding the frame clock. It is
// not part of the world: systems receive it as a separate argument.
func NewResources(now time.Time) *ecs.Entity {
	res := ecs.NewEntity(ecs.NilEntity)
	ecs.Add(res, component.NewTimeResources(now))
	return res
}

// NewRenderTarget creates the entity whose sprite is the presented frame.
// Call it once per world.
func NewRenderTarget(w *ecs.World, width, height int) *ecs.Entity {
	e := w.CreateEntity()
	target := component.NewSprite(width, height)
	target.Fill(render.Background)
	ecs.Add(e, component.RenderTarget{})
	ecs.Add(e, target)
	return e
}

// NewWobbler creates a sprite entity at pos that swings horizontally.
func NewWobbler(w *ecs.World, sprite component.Sprite, pos component.Position, amplitude float64) *ecs.Entity {
	e := NewSprite(w, sprite, pos)
	ecs.Add(e, component.WobbleMove{Amplitude: amplitude})
	return e
}

// NewSprite creates a static sprite entity at pos.
func NewSprite(w *ecs.World, sprite component.Sprite, pos component.Position) *ecs.Entity {
	e := w.CreateEntity()
	ecs.Add(e, pos)
	ecs.Add(e, sprite)
	return e
}
