package render

import "sprite-ecs/internal/component"

// Blit copies src onto dst with src's anchor placed at pos.
// Pixels are copied verbatim, alpha bits included; there is no blending.
// Whatever falls outside dst is dropped.
func Blit(dst *component.Sprite, pos component.Position, src component.Sprite) {
	ox := pos.X - src.AnchorX
	oy := pos.Y - src.AnchorY

	// Cull sprites that miss the target entirely.
	if ox+src.Width <= 0 || oy+src.Height <= 0 || ox >= dst.Width || oy >= dst.Height {
		return
	}

	// Clip once to the part of src that lands on dst.
	x0, x1 := max(0, -ox), min(src.Width, dst.Width-ox)
	y0, y1 := max(0, -oy), min(src.Height, dst.Height-oy)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	for y := y0; y < y1; y++ {
		s := y * src.Width
		d := (y+oy)*dst.Width + ox
		copy(dst.Pixels[d+x0:d+x1], src.Pixels[s+x0:s+x1])
	}
}
