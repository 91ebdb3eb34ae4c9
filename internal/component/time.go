package component

import (
	"sprite-ecs/internal/ecs"
	"time"
)

const CTimeResources ecs.ComponentType = 1

// TimeResources is the frame clock kept on the resource entity.
// Only the time system writes it.
type TimeResources struct {
	Start time.Time     // when the loop started
	Last  time.Time     // previous frame
	This  time.Time     // current frame
	Delta time.Duration // This - Last
	Total time.Duration // This - Start
}

// NewTimeResources starts every instant at now.
func NewTimeResources(now time.Time) TimeResources {
	return TimeResources{Start: now, Last: now, This: now}
}

func (TimeResources) Type() ecs.ComponentType { return CTimeResources }
