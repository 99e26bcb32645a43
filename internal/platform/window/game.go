package window

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/loop"
)

// platform collects input for the next frame and keeps the last frame as
// RGBA bytes for Draw.
type platform struct {
	queue    core.EventQueue
	format   core.PixelFormat
	pix      []byte
	setTitle func(string)
}

func newPlatform(width, height int, f core.PixelFormat) *platform {
	return &platform{
		format:   f,
		pix:      make([]byte, 4*width*height),
		setTitle: ebiten.SetWindowTitle,
	}
}

func (p *platform) Poll() []core.Event {
	return p.queue.Drain()
}

func (p *platform) Present(s *core.Surface) error {
	PackRGBA(p.pix, s, p.format)
	return nil
}

func (p *platform) SetTitle(title string) {
	p.setTitle(title)
}

// Game implements ebiten.Game around a loop.
// Input is sampled every Ebitengine tick so key presses reach the queue in
// the order of the ticks they arrived in. A game frame runs once a full frame
// budget of ticks has accumulated.
type Game struct {
	ctx      context.Context
	loop     *loop.Loop
	platform *platform
	width    int
	height   int
	keys     []ebiten.Key

	fps  int
	tps  int
	acc  int  // fps units gathered since the last frame; a frame is due at tps
	quit bool // a quit event is queued
}

func newGame(ctx context.Context, l *loop.Loop, p *platform, width, height, fps int) *Game {
	return &Game{
		ctx:      ctx,
		loop:     l,
		platform: p,
		width:    width,
		height:   height,
		fps:      fps,
		tps:      max(ebiten.DefaultTPS, fps),
	}
}

// Update gathers this tick's input and runs a frame when one is due.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	return g.tick(g.keys, ebiten.IsWindowBeingClosed())
}

// tick queues one tick of input and advances the frame clock. A queued quit
// runs the frame immediately.
func (g *Game) tick(keys []ebiten.Key, closing bool) error {
	if closing {
		g.platform.queue.Push(core.Quit())
		g.quit = true
	}
	g.push(keys)

	g.acc += g.fps
	if g.acc < g.tps && !g.quit {
		return nil
	}
	if g.acc >= g.tps {
		g.acc -= g.tps
	}

	if err := g.loop.Frame(); err != nil {
		return err
	}
	if !g.loop.Running() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) push(keys []ebiten.Key) {
	for _, k := range keys {
		ev, ok := MapKey(k)
		if !ok {
			continue
		}
		if ev.Type == core.EventQuit {
			g.quit = true
		}
		g.platform.queue.Push(ev)
	}
}

// Draw copies the last presented frame to the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.WritePixels(g.platform.pix)
}

// Layout keeps the logical screen at the surface size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
