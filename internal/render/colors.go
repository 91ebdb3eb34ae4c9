package render

import "github.com/gdamore/tcell/v2"

// Background is what the render target is cleared to each frame: opaque black.
const Background uint32 = 0xFF000000

// argb packs four channels as alpha<<24 | red<<16 | green<<8 | blue.
func argb(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// RGB packs a fully opaque pixel.
func RGB(r, g, b uint8) uint32 { return argb(0xFF, r, g, b) }

// Channels unpacks a pixel.
func Channels(c uint32) (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// TermColor converts a pixel to a true-colour terminal colour. The terminal
// has no alpha, so the alpha channel is ignored.
func TermColor(c uint32) tcell.Color {
	_, r, g, b := Channels(c)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
