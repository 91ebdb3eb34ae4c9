// Package assets turns image files into sprites.
package assets

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"sprite-ecs/internal/component"
	"sprite-ecs/internal/render"

	"github.com/rotisserie/eris"
)

// Decode reads an image in any registered format (PNG, JPEG, GIF).
// The sprite is fully opaque whatever the source alpha, and anchored at its
// centre.
func Decode(r io.Reader) (component.Sprite, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return component.Sprite{}, eris.Wrap(err, "decode image")
	}
	return FromImage(img), nil
}

// FromImage converts img's RGB samples to opaque packed pixels.
func FromImage(img image.Image) component.Sprite {
	b := img.Bounds()
	s := component.NewSprite(b.Dx(), b.Dy())
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			s.Set(x, y, render.RGB(c.R, c.G, c.B))
		}
	}
	return s.Centered()
}

// Load decodes the image at path, flipping it vertically when flipV is set.
func Load(path string, flipV bool) (component.Sprite, error) {
	f, err := os.Open(path)
	if err != nil {
		return component.Sprite{}, eris.Wrapf(err, "open sprite %s", path)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return component.Sprite{}, eris.Wrapf(err, "load sprite %s", path)
	}
	if flipV {
		FlipVertical(&s)
	}
	return s, nil
}

// FlipVertical mirrors s top to bottom in place.
func FlipVertical(s *component.Sprite) {
	for top, bottom := 0, s.Height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := s.Pixels[top*s.Width : (top+1)*s.Width]
		b := s.Pixels[bottom*s.Width : (bottom+1)*s.Width]
		for i := range a {
			a[i], b[i] = b[i], a[i]
		}
	}
}
