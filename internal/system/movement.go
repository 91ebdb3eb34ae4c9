package system

import (
	"math"
	"sprite-ecs/internal/component"
	"sprite-ecs/internal/ecs"

	"github.com/rotisserie/eris"
)

// WobbleMove sets X of every wobbling entity to
// targetWidth/2 + round(sin(totalSeconds) * amplitude).
// Wobblers without a Position are left alone.
func WobbleMove(res *ecs.Entity, w *ecs.World) error {
	e, err := renderTarget(w)
	if err != nil {
		return err
	}
	target, _ := ecs.Get[component.Sprite](e)
	tr, ok := ecs.Get[component.TimeResources](res)
	if !ok {
		return eris.Wrapf(ErrNoTimeResources, "%s", res)
	}

	centre := target.Width / 2
	swing := math.Sin(tr.Total.Seconds())
	for _, ent := range w.Query(component.CWobbleMove, component.CPosition) {
		wobble, _ := ecs.Get[component.WobbleMove](ent)
		pos, _ := ecs.GetMut[component.Position](ent)
		pos.X = centre + int(math.Round(swing*wobble.Amplitude))
	}
	return nil
}
