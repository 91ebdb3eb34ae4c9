package render

// Viewport maps a frame buffer onto a block of terminal cells.
// Every cell shows two pixels stacked vertically (upper half block), so one
// cell row covers two pixel rows. The picture keeps the frame's aspect ratio
// and is centred in the cells it is given.
type Viewport struct {
	Left, Top  int // first cell of the picture
	Cols, Rows int // picture size in cells
	PixW, PixH int // picture size in terminal pixels (PixH = Rows*2 or one less)
	SrcW, SrcH int // frame buffer size
}

// NewViewport fits a srcW×srcH frame into cols×rows cells.
func NewViewport(srcW, srcH, cols, rows int) Viewport {
	v := Viewport{SrcW: srcW, SrcH: srcH}
	if srcW <= 0 || srcH <= 0 || cols <= 0 || rows <= 0 {
		return v
	}
	scale := min(float64(cols)/float64(srcW), float64(rows*2)/float64(srcH))
	v.PixW = max(1, int(float64(srcW)*scale))
	v.PixH = max(1, int(float64(srcH)*scale))
	v.Cols = v.PixW
	v.Rows = (v.PixH + 1) / 2
	v.Left = (cols - v.Cols) / 2
	v.Top = (rows - v.Rows) / 2
	return v
}

// Empty reports whether nothing can be drawn.
func (v Viewport) Empty() bool { return v.PixW == 0 || v.PixH == 0 }

// CellToPixel returns the frame pixel shown in the upper (half=0) or lower
// (half=1) part of cell (cx, cy). ok is false outside the picture.
func (v Viewport) CellToPixel(cx, cy, half int) (px, py int, ok bool) {
	u := cx - v.Left
	w := (cy-v.Top)*2 + half
	if v.Empty() || u < 0 || u >= v.PixW || w < 0 || w >= v.PixH {
		return 0, 0, false
	}
	return u * v.SrcW / v.PixW, w * v.SrcH / v.PixH, true
}
