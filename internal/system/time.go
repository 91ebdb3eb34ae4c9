package system

import (
	"sprite-ecs/internal/component"
	"sprite-ecs/internal/ecs"

	"github.com/rotisserie/eris"
)

// AdvanceTime returns the system that moves the frame clock forward.
// A clock reading earlier than the current frame is held at the current
// frame, so This never goes backwards and Delta is never negative.
func AdvanceTime(clock Clock) System {
	return func(res *ecs.Entity, _ *ecs.World) error {
		tr, ok := ecs.GetMut[component.TimeResources](res)
		if !ok {
			return eris.Wrapf(ErrNoTimeResources, "%s", res)
		}
		now := clock.Now()
		if now.Before(tr.This) {
			now = tr.This
		}
		tr.Last = tr.This
		tr.This = now
		tr.Delta = tr.This.Sub(tr.Last)
		tr.Total = tr.This.Sub(tr.Start)
		return nil
	}
}
