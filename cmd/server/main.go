// sprite-ecs-server serves the sprite loop over SSH. Every session gets its
// own world and frame loop. Build:
//
//	go build -o sprite-ecs-server ./cmd/server
//
// Usage:
//
//	./sprite-ecs-server [--port 2222] [--key server_host_key]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sprite-ecs/assets"
	"sprite-ecs/internal/component"
	"sprite-ecs/internal/config"
	"sprite-ecs/internal/game"
	"sprite-ecs/internal/render"
	internalssh "sprite-ecs/internal/ssh"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	"github.com/rotisserie/eris"
	xssh "golang.org/x/crypto/ssh"
)

const defaultTerm = "xterm-256color"

// allowedTerms limits the TERM values a client may select; the value is put
// into the process environment for the terminfo lookup.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

// termMu serialises os.Setenv("TERM") with screen creation.
var termMu sync.Mutex

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("load config", "err", err)
		os.Exit(1)
	}
	sprite, err := loadSprite(cfg)
	if err != nil {
		logger.Error("load sprite", "err", err)
		os.Exit(1)
	}
	signer, err := loadOrCreateHostKey(*keyFile, logger)
	if err != nil {
		logger.Error("host key", "err", err)
		os.Exit(1)
	}

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", *port),
		Handler: func(s gossh.Session) {
			serveSession(s, cfg, sprite, logger)
		},
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info("listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("serve", "err", err)
		os.Exit(1)
	}
}

func loadSprite(cfg config.Config) (component.Sprite, error) {
	if cfg.SpritePath == "" {
		return assets.Builtin(48), nil
	}
	return assets.Load(cfg.SpritePath, cfg.FlipSprite)
}

// serveSession runs one game for the lifetime of s.
func serveSession(s gossh.Session, cfg config.Config, sprite component.Sprite, logger *slog.Logger) {
	log := logger.With("remote", s.RemoteAddr().String(), "user", s.User())

	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "A PTY is required. Connect with: ssh -t -p <port> <host>")
		_ = s.Exit(1)
		return
	}

	tty := internalssh.NewSessionTty(s, pty.Window, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", sessionTerm(pty.Term, s.Environ()))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		_ = s.Exit(1)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		_ = s.Exit(1)
		return
	}

	term := render.NewTerminal(screen, cfg.Title)
	defer term.Close()
	g, err := game.New(cfg, term, sprite, log)
	if err != nil {
		log.Error("new game", "err", err)
		_ = s.Exit(1)
		return
	}

	log.Info("session start")
	err = g.Run(s.Context())
	term.Close()
	if err != nil {
		log.Error("session failed", "err", eris.ToString(err, false))
		_ = s.Exit(1)
		return
	}
	log.Info("session end", "frames", g.Frames())
	_ = s.Exit(0)
}

// sessionTerm picks the terminal type from the PTY request, then the session
// environment, falling back to defaultTerm for unknown values.
func sessionTerm(ptyTerm string, environ []string) string {
	if allowedTerms[ptyTerm] {
		return ptyTerm
	}
	for _, env := range environ {
		if t, ok := strings.CutPrefix(env, "TERM="); ok && allowedTerms[t] {
			return t
		}
	}
	return defaultTerm
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, eris.Wrap(err, "generate host key")
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, eris.Wrap(err, "create signer")
	}
	if block, err := xssh.MarshalPrivateKey(key, "sprite-ecs server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(block), 0600); err != nil {
			logger.Warn("persist host key", "path", path, "err", err)
		}
	}
	return signer, nil
}
