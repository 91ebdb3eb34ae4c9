package component

import "sprite-ecs/internal/ecs"

const CWobbleMove ecs.ComponentType = 5

// WobbleMove swings an entity's X around the middle of the render target.
type WobbleMove struct {
	Amplitude float64 // pixels either side of centre
}

func (WobbleMove) Type() ecs.ComponentType { return CWobbleMove }
