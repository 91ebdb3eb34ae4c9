package render

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rotisserie/eris"
)

// Presenter is the display the frame loop hands finished frames to.
type Presenter interface {
	IsOpen() bool
	Present(pixels []uint32, width, height int) error
}

// Terminal presents frames on a tcell screen using half-block cells.
// The top row is a status line. Escape, q or Ctrl-C closes it.
type Terminal struct {
	screen tcell.Screen
	title  string
	status string
	open   bool

	events    chan tcell.Event
	done      chan struct{}
	closeOnce sync.Once
}

// OpenTerminal creates and initialises a screen on the local terminal.
func OpenTerminal(title string) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, eris.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return nil, eris.Wrap(err, "init screen")
	}
	return NewTerminal(screen, title), nil
}

// NewTerminal adopts an initialised screen. Closing the Terminal finalises it.
func NewTerminal(screen tcell.Screen, title string) *Terminal {
	t := &Terminal{
		screen: screen,
		title:  title,
		open:   true,
		events: make(chan tcell.Event, 32),
		done:   make(chan struct{}),
	}
	screen.HideCursor()
	go t.poll()
	return t
}

// poll forwards screen events to the frame loop. It is the only goroutine a
// Terminal starts; events are handled on the loop's side in drain.
func (t *Terminal) poll() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			close(t.events)
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

func (t *Terminal) drain() {
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				t.open = false
				return
			}
			t.handle(ev)
		default:
			return
		}
	}
}

func (t *Terminal) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			t.open = false
		case tcell.KeyRune:
			if r := ev.Rune(); r == 'q' || r == 'Q' {
				t.open = false
			}
		}
	}
}

// IsOpen reports whether the viewer still wants frames.
func (t *Terminal) IsOpen() bool {
	if t.open {
		t.drain()
	}
	return t.open
}

// SetStatus replaces the text shown after the title.
func (t *Terminal) SetStatus(s string) { t.status = s }

// Present draws a width×height frame of packed ARGB pixels.
func (t *Terminal) Present(pixels []uint32, width, height int) error {
	if width <= 0 || height <= 0 || len(pixels) < width*height {
		return eris.Errorf("frame buffer of %d pixels cannot hold %dx%d", len(pixels), width, height)
	}
	cols, rows := t.screen.Size()
	t.screen.Clear()

	vp := NewViewport(width, height, cols, rows-1)
	bg := TermColor(Background)
	for cy := vp.Top; cy < vp.Top+vp.Rows; cy++ {
		for cx := vp.Left; cx < vp.Left+vp.Cols; cx++ {
			fg, lower := bg, bg
			if px, py, ok := vp.CellToPixel(cx, cy, 0); ok {
				fg = TermColor(pixels[py*width+px])
			}
			if px, py, ok := vp.CellToPixel(cx, cy, 1); ok {
				lower = TermColor(pixels[py*width+px])
			}
			t.screen.SetContent(cx, cy+1, '▀', nil, tcell.StyleDefault.Foreground(fg).Background(lower))
		}
	}

	t.drawStatus(cols)
	t.screen.Show()
	return nil
}

func (t *Terminal) drawStatus(cols int) {
	line := t.title
	if t.status != "" {
		line += "  " + t.status
	}
	line = runewidth.Truncate(line, cols, "…")
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, r := range line {
		t.screen.SetContent(x, 0, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// Close stops the event pump and restores the terminal.
func (t *Terminal) Close() {
	t.closeOnce.Do(func() {
		t.open = false
		close(t.done)
		t.screen.Fini()
	})
}
