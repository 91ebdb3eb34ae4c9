package component

import "sprite-ecs/internal/ecs"

const CRenderTarget ecs.ComponentType = 4

// RenderTarget marks the entity whose sprite is the presented frame.
// Exactly one live entity carries it.
type RenderTarget struct{}

func (RenderTarget) Type() ecs.ComponentType { return CRenderTarget }
