package game

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sprite-ecs/internal/component"
	"sprite-ecs/internal/config"
	"sprite-ecs/internal/ecs"
	"sprite-ecs/internal/render"
	"sprite-ecs/internal/system"
	"strings"
	"testing"
	"time"

	"github.com/rotisserie/eris"
)

// stepClock advances by step on every reading.
type stepClock struct {
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

// fakePresenter records frames and closes itself after limit presents.
type fakePresenter struct {
	limit  int
	frames [][]uint32
	status string
	err    error
}

func (p *fakePresenter) IsOpen() bool { return len(p.frames) < p.limit }

func (p *fakePresenter) Present(pixels []uint32, width, height int) error {
	if p.err != nil {
		return p.err
	}
	if len(pixels) != width*height {
		return errors.New("size mismatch")
	}
	p.frames = append(p.frames, append([]uint32(nil), pixels...))
	return nil
}

func (p *fakePresenter) SetStatus(s string) { p.status = s }

func quietLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func testConfig() config.Config {
	cfg := config.Default()
	cfg.FrameMillis = 0
	return cfg
}

func testSprite() component.Sprite {
	s := component.NewSprite(8, 8)
	s.Fill(0xFFFFFFFF)
	return s.Centered()
}

func newTestGame(t *testing.T, cfg config.Config, p render.Presenter) *Game {
	t.Helper()
	clock := &stepClock{now: time.Unix(0, 0), step: 16 * time.Millisecond}
	g, err := New(cfg, p, testSprite(), quietLogger(), WithClock(clock))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestNewBuildsWorld(t *testing.T) {
	cfg := testConfig()
	cfg.Sprites = 3
	g := newTestGame(t, cfg, &fakePresenter{})

	if g.world.Len() != 4 {
		t.Fatalf("expected render target + 3 sprites, got %d entities", g.world.Len())
	}
	if e, ok := ecs.FindFirstWith[component.RenderTarget](g.world.Entities()); !ok || e != g.target {
		t.Fatal("render target not discoverable")
	}
	if !ecs.Has[component.TimeResources](g.resources) {
		t.Fatal("resources must carry TimeResources")
	}
	wobblers := g.world.Query(component.CWobbleMove, component.CPosition, component.CSprite)
	if len(wobblers) != 3 {
		t.Fatalf("expected 3 wobblers, got %d", len(wobblers))
	}
	first, _ := ecs.Get[component.WobbleMove](wobblers[0])
	second, _ := ecs.Get[component.WobbleMove](wobblers[1])
	if first.Amplitude != 160 || second.Amplitude != 80 {
		t.Fatalf("amplitudes = %v, %v; want 160, 80", first.Amplitude, second.Amplitude)
	}
	pos, _ := ecs.Get[component.Position](wobblers[0])
	if pos.X != 320 || pos.Y != 45 {
		t.Fatalf("first wobbler at %+v; want (320,45)", pos)
	}
}

func TestNewSingleSpriteStartsMidHeight(t *testing.T) {
	g := newTestGame(t, testConfig(), &fakePresenter{})
	wobblers := g.world.Query(component.CWobbleMove)
	pos, _ := ecs.Get[component.Position](wobblers[0])
	if pos.X != 320 || pos.Y != 90 {
		t.Fatalf("wobbler at %+v; want (320,90)", pos)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Width = 0
	if _, err := New(cfg, &fakePresenter{}, testSprite(), quietLogger()); err == nil {
		t.Fatal("expected an error for a zero-width target")
	}
}

func TestNewRejectsShortSprite(t *testing.T) {
	bad := component.Sprite{Width: 4, Height: 4, Pixels: make([]uint32, 3)}
	if _, err := New(testConfig(), &fakePresenter{}, bad, quietLogger()); err == nil {
		t.Fatal("expected an error for a truncated sprite")
	}
}

func TestRunPresentsUntilClosed(t *testing.T) {
	p := &fakePresenter{limit: 3}
	g := newTestGame(t, testConfig(), p)

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if g.Frames() != 3 || len(p.frames) != 3 {
		t.Fatalf("frames = %d, presented = %d; want 3", g.Frames(), len(p.frames))
	}
	if len(p.frames[0]) != 320*180 {
		t.Fatalf("presented %d pixels; want %d", len(p.frames[0]), 320*180)
	}
	if !ecs.Has[component.Sprite](g.target) {
		t.Fatal("render target lost its sprite")
	}
}

func TestRunDrawsSpriteNearCentre(t *testing.T) {
	p := &fakePresenter{limit: 1}
	g := newTestGame(t, testConfig(), p)

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	// One 16ms step after the restart: sin(0.016)*160 rounds to 3.
	frame := p.frames[0]
	if frame[90*320+163] != 0xFFFFFFFF {
		t.Fatal("sprite not drawn around x=163")
	}
	if frame[0] != render.Background {
		t.Fatal("background not cleared")
	}
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	p := &fakePresenter{limit: 1000}
	g := newTestGame(t, testConfig(), p)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := g.Run(ctx); err != nil {
		t.Fatalf("cancellation is not an error, got %v", err)
	}
	if len(p.frames) != 0 {
		t.Fatalf("no frame should be presented after cancel, got %d", len(p.frames))
	}
}

func TestRunHonoursFrameInterval(t *testing.T) {
	cfg := testConfig()
	cfg.FrameMillis = 5
	p := &fakePresenter{limit: 3}
	g := newTestGame(t, cfg, p)

	start := time.Now()
	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Fatalf("3 capped frames took %v; expected at least two intervals", elapsed)
	}
}

func TestRunFailsWithoutRenderTarget(t *testing.T) {
	p := &fakePresenter{limit: 5}
	g := newTestGame(t, testConfig(), p)
	if _, err := ecs.Remove[component.RenderTarget](g.target); err != nil {
		t.Fatal(err)
	}

	err := g.Run(context.Background())
	if !eris.Is(err, system.ErrNoRenderTarget) {
		t.Fatalf("expected ErrNoRenderTarget, got %v", err)
	}
	if !strings.Contains(err.Error(), "no render-target entity exists") {
		t.Fatalf("diagnostic should name the missing component: %v", err)
	}
	if len(p.frames) != 0 {
		t.Fatal("a failed frame must not be presented")
	}
}

func TestRunPropagatesPresentError(t *testing.T) {
	boom := errors.New("display gone")
	p := &fakePresenter{limit: 5, err: boom}
	g := newTestGame(t, testConfig(), p)

	if err := g.Run(context.Background()); !eris.Is(err, boom) {
		t.Fatalf("expected present error, got %v", err)
	}
}

func TestRunReportsStatus(t *testing.T) {
	p := &fakePresenter{limit: 100}
	g := newTestGame(t, testConfig(), p)

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(p.status, "fps") {
		t.Fatalf("status = %q; want a frame rate", p.status)
	}
}

func TestRunWritesRunLog(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)
	cfg := testConfig()
	cfg.RunLog = true
	cfg.Title = "logged"
	g := newTestGame(t, cfg, &fakePresenter{limit: 2})

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(tmp, "sprite-ecs", "runs.jsonl"))
	if err != nil {
		t.Fatalf("runs.jsonl not created: %v", err)
	}
	if !strings.Contains(string(data), `"frames":2`) || !strings.Contains(string(data), "logged") {
		t.Fatalf("unexpected run log: %q", data)
	}
}

// panickingPresenter panics on its first frame.
type panickingPresenter struct{}

func (panickingPresenter) IsOpen() bool { return true }

func (panickingPresenter) Present([]uint32, int, int) error { panic("present blew up") }

func TestRunRecordsPanicInRunLog(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)
	cfg := testConfig()
	cfg.RunLog = true
	g := newTestGame(t, cfg, panickingPresenter{})

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		_ = g.Run(context.Background())
	}()
	if recovered != "present blew up" {
		t.Fatalf("recovered %v; Run should re-raise the presenter's panic", recovered)
	}

	data, err := os.ReadFile(filepath.Join(tmp, "sprite-ecs", "runs.jsonl"))
	if err != nil {
		t.Fatalf("runs.jsonl not created: %v", err)
	}
	if !strings.Contains(string(data), `"error":"panic: present blew up"`) {
		t.Fatalf("panicked run should be logged as failed: %q", data)
	}
}

func TestTickCountsFrames(t *testing.T) {
	g := newTestGame(t, testConfig(), &fakePresenter{})
	for i := 0; i < 4; i++ {
		if err := g.Tick(); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}
	if g.Frames() != 4 {
		t.Fatalf("frames = %d; want 4", g.Frames())
	}
	tr, _ := ecs.Get[component.TimeResources](g.resources)
	if tr.Delta != 16*time.Millisecond {
		t.Fatalf("delta = %v; want 16ms", tr.Delta)
	}
}
