package window

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/loop"
	"github.com/vovakirdan/pixel-snake/internal/registry"
)

// Name is the registry name of this backend.
const Name = "window"

func init() {
	registry.Register(Name, func() registry.Backend { return Backend{} })
}

// Backend plays the game in an Ebitengine window.
type Backend struct{}

func (Backend) Name() string        { return Name }
func (Backend) Description() string { return "native window via Ebitengine" }
func (Backend) Terminal() bool      { return false }

// Run opens the window and blocks until it is closed or the game quits.
// Ebitengine requires this to run on the main goroutine.
func (Backend) Run(ctx context.Context, cfg loop.Config, logger *log.Logger) error {
	w, h := cfg.Sim.SurfaceSize()
	p := newPlatform(w, h, core.RGB888)

	l, err := loop.New(cfg, p, loop.WithLogger(logger))
	if err != nil {
		return err
	}

	g := newGame(ctx, l, p, w, h, cfg.FPS)

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(g.tps)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil {
		if l.Frames() == 0 {
			return registry.NewInitError(Name, err)
		}
		return err
	}
	return nil
}
