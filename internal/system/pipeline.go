package system

import (
	"sprite-ecs/internal/ecs"

	"github.com/rotisserie/eris"
)

// Named is a system with the name it is reported under.
type Named struct {
	Name string
	Fn   System
}

// Pipeline runs its systems in the order they were given.
type Pipeline struct {
	systems []Named
}

// NewPipeline builds a pipeline from an explicit ordered list.
func NewPipeline(systems ...Named) *Pipeline {
	return &Pipeline{systems: systems}
}

// Default returns the frame pipeline: clear, time, wobble, draw.
func Default(clock Clock) *Pipeline {
	return NewPipeline(
		Named{Name: "clear-render-target", Fn: ClearRenderTarget},
		Named{Name: "advance-time", Fn: AdvanceTime(clock)},
		Named{Name: "wobble-move", Fn: WobbleMove},
		Named{Name: "draw-sprites", Fn: DrawSprites},
	)
}

// Names lists the systems in run order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.systems))
	for i, s := range p.systems {
		names[i] = s.Name
	}
	return names
}

// Tick runs every system once. The first failure ends the tick.
func (p *Pipeline) Tick(res *ecs.Entity, w *ecs.World) error {
	for _, s := range p.systems {
		if err := s.Fn(res, w); err != nil {
			return eris.Wrapf(err, "system %s", s.Name)
		}
	}
	return nil
}
