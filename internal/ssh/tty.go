// Package ssh lets a tcell screen draw into an SSH session.
package ssh

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

var _ tcell.Tty = (*SessionTty)(nil)

// SessionTty implements tcell.Tty over the channel of one SSH session.
// Keyboard input is read from the session, frames are written to it, and
// window-change requests become tcell resize notifications.
type SessionTty struct {
	conn  io.ReadWriteCloser
	winCh <-chan gossh.Window

	mu       sync.Mutex
	window   gossh.Window
	onResize func()
	watch    sync.Once
}

// NewSessionTty wraps conn (normally a gossh.Session). win is the size from
// the PTY request; winCh delivers later resizes and is closed with the session.
func NewSessionTty(conn io.ReadWriteCloser, win gossh.Window, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{conn: conn, window: win, winCh: winCh}
}

// Read returns keyboard input sent by the client.
func (t *SessionTty) Read(b []byte) (int, error) { return t.conn.Read(b) }

// Write sends terminal output to the client.
func (t *SessionTty) Write(b []byte) (int, error) { return t.conn.Write(b) }

// Close closes the session channel.
func (t *SessionTty) Close() error { return t.conn.Close() }

// Start, Stop and Drain have nothing to do: the channel is already in raw
// mode on the client side and writes are not buffered here.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the client's current terminal size.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb for window changes. The first call starts the
// goroutine that follows winCh for the rest of the session; without a
// channel the size never changes and no goroutine is started.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	t.mu.Unlock()

	if t.winCh == nil {
		return
	}
	t.watch.Do(func() {
		go func() {
			for win := range t.winCh {
				t.resize(win)
			}
		}()
	})
}

func (t *SessionTty) resize(win gossh.Window) {
	t.mu.Lock()
	t.window = win
	cb := t.onResize
	t.mu.Unlock()
	if cb != nil {
		cb()
	}
}
