package game

import (
	"context"
	"fmt"
	"log/slog"
	"sprite-ecs/internal/component"
	"sprite-ecs/internal/config"
	"sprite-ecs/internal/ecs"
	"sprite-ecs/internal/factory"
	"sprite-ecs/internal/render"
	"sprite-ecs/internal/system"
	"time"

	"github.com/rotisserie/eris"
)

// statusEvery is how often the frame rate is reported.
const statusEvery = time.Second

// statusSetter is implemented by presenters with a status line.
type statusSetter interface {
	SetStatus(string)
}

// Game is the top-level orchestrator: one world, its resource entity, the
// system pipeline and the surface frames are presented on.
type Game struct {
	cfg       config.Config
	presenter render.Presenter
	logger    *slog.Logger
	clock     system.Clock

	world     *ecs.World
	resources *ecs.Entity
	target    *ecs.Entity
	pipeline  *system.Pipeline

	frames      int
	started     time.Time
	lastStatus  time.Time
	statusFrame int
}

// Option customises a Game.
type Option func(*Game)

// WithClock replaces the system clock (tests).
func WithClock(c system.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// New builds the startup world: the resource entity, a render target of the
// configured size, and cfg.Sprites wobbling copies of sprite stacked down the
// target with shrinking amplitude.
func New(cfg config.Config, presenter render.Presenter, sprite component.Sprite, logger *slog.Logger, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, eris.Wrap(err, "invalid config")
	}
	if len(sprite.Pixels) < sprite.Width*sprite.Height {
		return nil, eris.Errorf("sprite buffer holds %d pixels, need %dx%d", len(sprite.Pixels), sprite.Width, sprite.Height)
	}

	g := &Game{
		cfg:       cfg,
		presenter: presenter,
		logger:    logger,
		clock:     system.SystemClock{},
		world:     ecs.NewWorld(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.pipeline = system.Default(g.clock)
	g.resources = factory.NewResources(g.clock.Now())
	g.target = factory.NewRenderTarget(g.world, cfg.Width, cfg.Height)

	for i := 0; i < cfg.Sprites; i++ {
		pos := component.Position{X: cfg.Width, Y: cfg.Height * (i + 1) / (cfg.Sprites + 1)}
		factory.NewWobbler(g.world, sprite, pos, cfg.Amplitude/float64(i+1))
	}
	return g, nil
}

// Frames returns the number of completed ticks.
func (g *Game) Frames() int { return g.frames }

// Tick runs the pipeline once.
func (g *Game) Tick() error {
	if err := g.pipeline.Tick(g.resources, g.world); err != nil {
		return eris.Wrapf(err, "frame %d", g.frames)
	}
	g.frames++
	return nil
}

// Run ticks and presents frames until the presenter closes or ctx is done.
// Both are a normal end and return nil. A failed frame ends the loop with
// its error before anything from that frame is shown. A panic is recorded as
// a failed run and then re-raised.
func (g *Game) Run(ctx context.Context) (err error) {
	g.restartClock()
	g.logger.Info("loop starting",
		"entities", g.world.Len(),
		"systems", g.pipeline.Names(),
		"frame_interval", g.cfg.FrameInterval(),
	)
	defer func() {
		if r := recover(); r != nil {
			g.finish(eris.Errorf("panic: %v", r))
			panic(r)
		}
		g.finish(err)
	}()

	var limit <-chan time.Time
	if iv := g.cfg.FrameInterval(); iv > 0 {
		ticker := time.NewTicker(iv)
		defer ticker.Stop()
		limit = ticker.C
	}

	for ctx.Err() == nil && g.presenter.IsOpen() {
		if err := g.Tick(); err != nil {
			return err
		}
		if err := g.present(); err != nil {
			return err
		}
		if limit == nil {
			continue
		}
		select {
		case <-ctx.Done():
		case <-limit:
		}
	}
	return nil
}

// restartClock moves the frame clock to now so the first frame does not
// count setup time.
func (g *Game) restartClock() {
	now := g.clock.Now()
	if tr, ok := ecs.GetMut[component.TimeResources](g.resources); ok {
		*tr = component.NewTimeResources(now)
	}
	g.started = now
	g.lastStatus = now
}

func (g *Game) present() error {
	target, ok := ecs.Get[component.Sprite](g.target)
	if !ok {
		return eris.Wrapf(system.ErrNoTargetSprite, "presenting frame %d", g.frames)
	}
	g.reportStatus()
	if err := g.presenter.Present(target.Pixels, target.Width, target.Height); err != nil {
		return eris.Wrap(err, "present frame")
	}
	return nil
}

func (g *Game) reportStatus() {
	tr, _ := ecs.Get[component.TimeResources](g.resources)
	elapsed := tr.This.Sub(g.lastStatus)
	if elapsed < statusEvery {
		return
	}
	fps := float64(g.frames-g.statusFrame) / elapsed.Seconds()
	g.lastStatus, g.statusFrame = tr.This, g.frames
	g.logger.Debug("frame rate", "fps", fps, "frames", g.frames, "delta", tr.Delta)
	if s, ok := g.presenter.(statusSetter); ok {
		s.SetStatus(fmt.Sprintf("%.0f fps  %d entities  q to quit", fps, g.world.Len()))
	}
}

func (g *Game) finish(err error) {
	elapsed := g.clock.Now().Sub(g.started)
	rl := RunLog{
		Timestamp: g.started,
		Title:     g.cfg.Title,
		Frames:    g.frames,
		Seconds:   elapsed.Seconds(),
		Sprites:   g.cfg.Sprites,
	}
	if elapsed > 0 {
		rl.AvgFPS = float64(g.frames) / elapsed.Seconds()
	}
	if err != nil {
		rl.Error = err.Error()
		g.logger.Error("loop stopped", "frames", g.frames, "error", err)
	} else {
		g.logger.Info("loop stopped", "frames", g.frames, "seconds", rl.Seconds, "avg_fps", rl.AvgFPS)
	}
	if g.cfg.RunLog {
		saveRunLog(rl, g.logger)
	}
}
