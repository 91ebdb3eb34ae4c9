// Package config holds the startup settings of the simulation.
//
// Settings start from Default and are overridden by SPRITE_ECS_* environment
// variables, for example:
//
//	SPRITE_ECS_SPRITE_PATH=assets/images/face.jpeg SPRITE_ECS_SPRITES=3 ./sprite-ecs
package config

import (
	"log/slog"
	"time"

	jlconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
)

// Config is everything the startup code needs to build and run a world.
type Config struct {
	Title       string  `config:"SPRITE_ECS_TITLE"`
	Width       int     `config:"SPRITE_ECS_WIDTH"`  // render target width in pixels
	Height      int     `config:"SPRITE_ECS_HEIGHT"` // render target height in pixels
	SpritePath  string  `config:"SPRITE_ECS_SPRITE_PATH"`
	FlipSprite  bool    `config:"SPRITE_ECS_FLIP_SPRITE"` // flip loaded images vertically
	Sprites     int     `config:"SPRITE_ECS_SPRITES"`     // number of wobbling sprites
	Amplitude   float64 `config:"SPRITE_ECS_AMPLITUDE"`
	FrameMillis int     `config:"SPRITE_ECS_FRAME_MS"` // 0 disables the frame cap
	LogFile     string  `config:"SPRITE_ECS_LOG_FILE"`
	LogLevel    string  `config:"SPRITE_ECS_LOG_LEVEL"`
	RunLog      bool    `config:"SPRITE_ECS_RUN_LOG"`
}

// Default returns the stock 320x180 scene with one sprite.
func Default() Config {
	return Config{
		Title:       "Engine",
		Width:       320,
		Height:      180,
		FlipSprite:  true,
		Sprites:     1,
		Amplitude:   160,
		FrameMillis: 16,
		LogLevel:    "info",
	}
}

// FromEnv applies the environment on top of Default without validating, so
// callers can layer flags on top before calling Validate.
func FromEnv() (Config, error) {
	cfg := Default()
	if err := jlconfig.FromEnv().To(&cfg); err != nil {
		return Config{}, eris.Wrap(err, "read environment")
	}
	return cfg, nil
}

// Load applies the environment on top of Default and validates the result.
func Load() (Config, error) {
	cfg, err := FromEnv()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the world cannot be built from.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return eris.Errorf("render target must be at least 1x1, got %dx%d", c.Width, c.Height)
	case c.Sprites < 1:
		return eris.Errorf("need at least one sprite, got %d", c.Sprites)
	case c.FrameMillis < 0:
		return eris.Errorf("frame interval cannot be negative, got %dms", c.FrameMillis)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// FrameInterval is the minimum time between presented frames.
func (c Config) FrameInterval() time.Duration {
	return time.Duration(c.FrameMillis) * time.Millisecond
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, eris.Wrapf(err, "log level %q", c.LogLevel)
	}
	return l, nil
}
