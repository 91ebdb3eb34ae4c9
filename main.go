// sprite-ecs draws wobbling sprites in the terminal. Settings come from
// SPRITE_ECS_* environment variables; the flags below override them.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sprite-ecs/assets"
	"sprite-ecs/internal/component"
	"sprite-ecs/internal/config"
	"sprite-ecs/internal/game"
	"sprite-ecs/internal/render"
	"syscall"

	"github.com/pkg/profile"
	"github.com/rotisserie/eris"
)

func main() {
	if err := run(); err != nil {
		if eris.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, prof, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	switch prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return eris.Errorf("unknown profile %q (want cpu or mem)", prof)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	sprite, err := loadSprite(cfg)
	if err != nil {
		return err
	}

	term, err := render.OpenTerminal(cfg.Title)
	if err != nil {
		return err
	}
	defer term.Close()
	g, err := game.New(cfg, term, sprite, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return playOn(ctx, term, g.Run)
}

// loadConfig layers flags over the environment and validates once, so a flag
// can replace a bad environment value.
func loadConfig(args []string) (config.Config, string, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, "", err
	}

	fs := flag.NewFlagSet("sprite-ecs", flag.ContinueOnError)
	prof := fs.String("profile", "", "write a profile to the working directory: cpu or mem")
	fs.StringVar(&cfg.SpritePath, "sprite", cfg.SpritePath, "image to draw (built-in face when empty)")
	fs.IntVar(&cfg.Sprites, "sprites", cfg.Sprites, "number of wobbling sprites")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "write logs to this file")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, "", err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, "", err
	}
	return cfg, *prof, nil
}

// playOn runs loop and closes term on every way out, panics included, so the
// terminal is restored before an error or trace is printed to it.
func playOn(ctx context.Context, term interface{ Close() }, loop func(context.Context) error) error {
	defer term.Close()
	return loop(ctx)
}

// newLogger writes text logs to cfg.LogFile. The terminal belongs to the
// screen while the loop runs, so without a file logs are dropped.
func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, opts)), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, eris.Wrapf(err, "open log file %s", cfg.LogFile)
	}
	return slog.New(slog.NewTextHandler(f, opts)), func() { _ = f.Close() }, nil
}

func loadSprite(cfg config.Config) (component.Sprite, error) {
	if cfg.SpritePath == "" {
		return assets.Builtin(48), nil
	}
	return assets.Load(cfg.SpritePath, cfg.FlipSprite)
}
