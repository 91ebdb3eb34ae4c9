package component

import "sprite-ecs/internal/ecs"

const CSprite ecs.ComponentType = 3

// Sprite is a row-major bitmap of packed 0xAARRGGBB pixels.
// AnchorX/AnchorY are subtracted from a Position to find the top-left corner.
type Sprite struct {
	Pixels  []uint32
	Width   int
	Height  int
	AnchorX int
	AnchorY int
}

func (Sprite) Type() ecs.ComponentType { return CSprite }

// NewSprite allocates a zeroed width×height sprite anchored at its top-left.
func NewSprite(width, height int) Sprite {
	return Sprite{
		Pixels: make([]uint32, width*height),
		Width:  width,
		Height: height,
	}
}

// Centered returns s with its anchor moved to the middle of the bitmap.
func (s Sprite) Centered() Sprite {
	s.AnchorX = s.Width / 2
	s.AnchorY = s.Height / 2
	return s
}

// InBounds reports whether (x, y) addresses a pixel of s.
func (s *Sprite) InBounds(x, y int) bool {
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height
}

// At returns the pixel at (x, y). The caller checks bounds.
func (s *Sprite) At(x, y int) uint32 { return s.Pixels[y*s.Width+x] }

// Set writes the pixel at (x, y). The caller checks bounds.
func (s *Sprite) Set(x, y int, c uint32) { s.Pixels[y*s.Width+x] = c }

// Fill overwrites every pixel with c.
func (s *Sprite) Fill(c uint32) {
	for i := range s.Pixels {
		s.Pixels[i] = c
	}
}
