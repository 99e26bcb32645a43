package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/loop"
	"github.com/vovakirdan/pixel-snake/internal/registry"
)

// Name is the registry name of this backend.
const Name = "tui"

// chromeRows is the space taken by the status and help lines.
const chromeRows = 2

func init() {
	registry.Register(Name, func() registry.Backend { return Backend{} })
}

// Backend plays the game in the terminal with Bubble Tea.
type Backend struct{}

func (Backend) Name() string        { return Name }
func (Backend) Description() string { return "Bubble Tea in the terminal (half-block pixels)" }
func (Backend) Terminal() bool      { return true }

// Run starts the program in the alternate screen and blocks until quit.
func (Backend) Run(ctx context.Context, cfg loop.Config, logger *log.Logger) error {
	if err := checkFits(cfg, int(os.Stdout.Fd())); err != nil {
		return registry.NewInitError(Name, err)
	}

	p := newPlatform(core.RGB888)
	l, err := loop.New(cfg, p, loop.WithLogger(logger))
	if err != nil {
		return err
	}

	program := tea.NewProgram(
		newModel(l, p, cfg.FPS),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := program.Run()
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		if l.Frames() == 0 {
			return registry.NewInitError(Name, err)
		}
		return err
	}

	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

// checkFits verifies that fd is a terminal large enough for the board.
func checkFits(cfg loop.Config, fd int) error {
	if !term.IsTerminal(fd) {
		return errors.New("stdout is not a terminal")
	}

	w, h, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	return fits(cfg, w, h)
}

// fits checks the board, status and help lines against a w x h terminal.
func fits(cfg loop.Config, w, h int) error {
	cols, rows := TerminalSize(cfg.Sim.SurfaceSize())
	if cols > w || rows+chromeRows > h {
		return fmt.Errorf("board needs %dx%d cells, terminal is %dx%d", cols, rows+chromeRows, w, h)
	}
	return nil
}
