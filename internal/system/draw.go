package system

import (
	"sprite-ecs/internal/component"
	"sprite-ecs/internal/ecs"
	"sprite-ecs/internal/render"
)

// DrawSprites composites every entity with a Sprite and a Position onto the
// render target, in collection order, so later entities end up on top.
// The target's sprite is detached while drawing and always put back.
func DrawSprites(_ *ecs.Entity, w *ecs.World) error {
	e, err := renderTarget(w)
	if err != nil {
		return err
	}
	return ecs.Detach(e, func(target *component.Sprite) error {
		for _, ent := range w.Query(component.CSprite, component.CPosition) {
			sprite, _ := ecs.Get[component.Sprite](ent)
			pos, _ := ecs.Get[component.Position](ent)
			render.Blit(target, pos, sprite)
		}
		return nil
	})
}
