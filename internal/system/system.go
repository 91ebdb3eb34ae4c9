// Package system holds the per-frame systems and the pipeline that runs them.
// Systems run one after another on a single goroutine; each has the world and
// the resource entity to itself for its whole turn.
package system

import (
	"sprite-ecs/internal/component"
	"sprite-ecs/internal/ecs"
	"time"

	"github.com/rotisserie/eris"
)

var (
	ErrNoRenderTarget  = eris.New("no render-target entity exists")
	ErrNoTargetSprite  = eris.New("render-target entity has no sprite")
	ErrNoTimeResources = eris.New("resource entity has no time resources")
)

// System mutates the world once per frame. A returned error is fatal for the
// frame and stops the pipeline.
type System func(res *ecs.Entity, w *ecs.World) error

// Clock is the frame time source.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the process's monotonic clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// renderTarget finds the render-target entity and checks it has a sprite.
func renderTarget(w *ecs.World) (*ecs.Entity, error) {
	e, ok := ecs.FindFirstWith[component.RenderTarget](w.Entities())
	if !ok {
		return nil, eris.Wrapf(ErrNoRenderTarget, "searched %d entities", w.Len())
	}
	if !ecs.Has[component.Sprite](e) {
		return nil, eris.Wrapf(ErrNoTargetSprite, "%s", e)
	}
	return e, nil
}
