package term

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/loop"
	"github.com/vovakirdan/pixel-snake/internal/registry"
)

// Name is the registry name of this backend.
const Name = "term"

func init() {
	registry.Register(Name, func() registry.Backend { return Backend{} })
}

// Backend plays the game on a tcell screen.
type Backend struct{}

func (Backend) Name() string        { return Name }
func (Backend) Description() string { return "tcell screen (half-block pixels, own frame loop)" }
func (Backend) Terminal() bool      { return true }

// Run initializes the screen, runs the loop until quit or ctx is done, and
// restores the terminal.
func (Backend) Run(ctx context.Context, cfg loop.Config, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return registry.NewInitError(Name, err)
	}
	return run(ctx, screen, cfg, logger)
}

// run plays on an uninitialized screen and finalizes it on return.
func run(ctx context.Context, screen tcell.Screen, cfg loop.Config, logger *log.Logger) error {
	if err := screen.Init(); err != nil {
		return registry.NewInitError(Name, err)
	}
	defer screen.Fini()

	if err := fits(cfg, screen); err != nil {
		return registry.NewInitError(Name, err)
	}

	screen.HideCursor()
	screen.Clear()

	s := NewScreen(screen, core.RGB888)
	defer s.Close()

	l, err := loop.New(cfg, s, loop.WithLogger(logger))
	if err != nil {
		return err
	}
	return l.Run(ctx)
}

// fits checks the board and its status row against the screen size.
func fits(cfg loop.Config, screen tcell.Screen) error {
	cols, rows := cfg.Sim.SurfaceSize()
	rows = (rows+1)/2 + 1
	if w, h := screen.Size(); cols > w || rows > h {
		return fmt.Errorf("board needs %dx%d cells, terminal is %dx%d", cols, rows, w, h)
	}
	return nil
}
