package system

import (
	"sprite-ecs/internal/component"
	"sprite-ecs/internal/ecs"
	"sprite-ecs/internal/render"
)

// ClearRenderTarget fills the render target with the background colour.
func ClearRenderTarget(_ *ecs.Entity, w *ecs.World) error {
	e, err := renderTarget(w)
	if err != nil {
		return err
	}
	target, _ := ecs.GetMut[component.Sprite](e)
	target.Fill(render.Background)
	return nil
}
