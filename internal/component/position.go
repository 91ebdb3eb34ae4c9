package component

import "sprite-ecs/internal/ecs"

const CPosition ecs.ComponentType = 2

// Position is where a sprite's anchor lands in render-target space.
type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }
