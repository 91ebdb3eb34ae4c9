package assets

import (
	"sprite-ecs/internal/component"
	"sprite-ecs/internal/render"
)

var (
	faceColor  = render.RGB(0xFF, 0xD2, 0x3F)
	inkColor   = render.RGB(0x3A, 0x22, 0x10)
	cheekColor = render.RGB(0xF2, 0x8C, 0x6B)
)

// Builtin draws a size×size smiling face, used when no image is configured.
// Sizes below 8 are raised to 8.
func Builtin(size int) component.Sprite {
	size = max(size, 8)
	s := component.NewSprite(size, size)
	s.Fill(render.Background)

	c := float64(size-1) / 2
	r := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := (float64(x)-c)/r, (float64(y)-c)/r
			d := dx*dx + dy*dy
			switch {
			case d > 1:
				continue
			case inDisc(dx, dy, -0.35, -0.3, 0.14) || inDisc(dx, dy, 0.35, -0.3, 0.14):
				s.Set(x, y, inkColor)
			case dy > 0.2 && dy < 0.5 && d > 0.3 && d < 0.45:
				s.Set(x, y, inkColor)
			case inDisc(dx, dy, -0.6, 0.2, 0.12) || inDisc(dx, dy, 0.6, 0.2, 0.12):
				s.Set(x, y, cheekColor)
			default:
				s.Set(x, y, faceColor)
			}
		}
	}
	return s.Centered()
}

func inDisc(x, y, cx, cy, radius float64) bool {
	x, y = x-cx, y-cy
	return x*x+y*y <= radius*radius
}
