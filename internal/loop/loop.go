// Package loop runs the per-frame cycle: drain input, steer, simulate,
// render, present and pace. Backends supply the Platform; the loop owns the
// simulation state and the pixel surface.
package loop

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/snake"
)

// Platform is the windowing collaborator a backend provides.
type Platform interface {
	// Poll returns every pending event in arrival order without blocking.
	Poll() []core.Event
	// Present shows a finished frame. The surface must not be retained.
	Present(s *core.Surface) error
	// SetTitle reflects the current score.
	SetTitle(title string)
}

// Clock abstracts time so frame pacing can be tested.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

// Config is everything a loop needs to start a game.
type Config struct {
	Sim   snake.Config
	FPS   int    // Target frames per second
	Seed  int64  // RNG seed; 0 seeds from the clock
	Title string // Title prefix, e.g. "Snake"
}

// Loop drives one game from the first frame to quit.
type Loop struct {
	cfg      Config
	platform Platform
	clock    Clock
	logger   *log.Logger

	state    *snake.State
	renderer snake.Renderer
	surface  *core.Surface

	running bool
	title   string
	frames  uint64
}

// Option configures a Loop.
type Option func(*Loop)

// WithClock replaces the wall clock.
func WithClock(c Clock) Option {
	return func(l *Loop) { l.clock = c }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loop) { l.logger = logger }
}

// New creates the simulation and its surface. It does not draw anything
// until the first Frame.
func New(cfg Config, p Platform, opts ...Option) (*Loop, error) {
	if cfg.FPS < 1 {
		return nil, fmt.Errorf("fps must be at least 1, got %d", cfg.FPS)
	}

	l := &Loop{
		cfg:      cfg,
		platform: p,
		clock:    SystemClock,
		logger:   log.New(io.Discard),
		running:  true,
	}
	for _, opt := range opts {
		opt(l)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = l.clock.Now().UnixNano()
	}
	state, err := snake.New(cfg.Sim, seed)
	if err != nil {
		return nil, err
	}

	l.state = state
	l.renderer = snake.NewRenderer(cfg.Sim)
	l.surface = core.NewSurface(cfg.Sim.SurfaceSize())
	l.logger.Debug("game created", "board", fmt.Sprintf("%dx%d", cfg.Sim.Width, cfg.Sim.Height),
		"fps", cfg.FPS, "seed", seed)
	return l, nil
}

// FrameBudget is the minimum duration of one frame.
func (l *Loop) FrameBudget() time.Duration {
	return time.Second / time.Duration(l.cfg.FPS)
}

// Running reports whether the loop should keep going. It turns false only on a quit event.
func (l *Loop) Running() bool {
	return l.running
}

// State exposes the simulation for read access.
func (l *Loop) State() *snake.State {
	return l.state
}

// Surface returns the frame buffer the loop renders into.
func (l *Loop) Surface() *core.Surface {
	return l.surface
}

// Frames returns the number of frames run so far.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Frame runs one iteration: input, simulation while the game is running,
// then render and present. After a quit event it returns without drawing.
func (l *Loop) Frame() error {
	if !l.running {
		return nil
	}
	l.frames++

	if quit := l.handleInput(l.platform.Poll()); quit {
		l.running = false
		l.logger.Info("quit requested", "score", l.state.Score(), "frames", l.frames)
		return nil
	}

	if l.state.Status() == snake.StatusRunning {
		res := l.state.Step()
		if res.Eaten > 0 {
			l.logger.Info("food eaten", "score", l.state.Score(), "length", l.state.Len())
		}
		if res.Status == snake.StatusEnded {
			l.logger.Info("game over", "outcome", l.state.Outcome(), "score", l.state.Score(),
				"length", l.state.Len(), "ticks", l.state.Ticks())
		}
	}

	l.renderer.Render(l.surface, l.state)
	if err := l.platform.Present(l.surface); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	l.updateTitle()
	return nil
}

// Run calls Frame at the configured rate until quit, an error, or ctx is
// done. Cancellation is only checked between frames.
func (l *Loop) Run(ctx context.Context) error {
	budget := l.FrameBudget()
	for l.running {
		if err := ctx.Err(); err != nil {
			return nil
		}

		start := l.clock.Now()
		if err := l.Frame(); err != nil {
			return err
		}
		if !l.running {
			break
		}

		if rest := budget - l.clock.Now().Sub(start); rest > 0 {
			l.clock.Sleep(rest)
		}
	}
	return nil
}

func (l *Loop) updateTitle() {
	title := FormatTitle(l.cfg.Title, l.state.Score(), l.state.Status() == snake.StatusEnded)
	if title == l.title {
		return
	}
	l.title = title
	l.platform.SetTitle(title)
}

// FormatTitle builds the score string shown in the window title.
func FormatTitle(prefix string, score int, ended bool) string {
	title := fmt.Sprintf("%s — Score: %d", prefix, score)
	if ended {
		title += " — Game Over"
	}
	return title
}
