package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/pixel-snake/internal/core"
)

const halfBlock = '▀'

// eventBuffer bounds the events held between two frames.
const eventBuffer = 100

// Screen adapts a tcell screen to the loop's Platform.
type Screen struct {
	screen tcell.Screen
	format core.PixelFormat
	events chan tcell.Event
	done   chan struct{}
	title  string
	styles map[[2]core.Color]tcell.Style
}

// NewScreen wraps an initialized tcell screen and starts reading its events.
// Call Close to stop the reader.
func NewScreen(s tcell.Screen, f core.PixelFormat) *Screen {
	sc := &Screen{
		screen: s,
		format: f,
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
		styles: make(map[[2]core.Color]tcell.Style),
	}
	go sc.pump()
	return sc
}

// pump forwards events until the screen is finalized.
func (s *Screen) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// Close stops the event reader. It does not finalize the tcell screen.
func (s *Screen) Close() {
	close(s.done)
}

// Poll drains pending events without blocking.
func (s *Screen) Poll() []core.Event {
	var out []core.Event
	for {
		select {
		case ev := <-s.events:
			out = s.translate(out, ev)
		default:
			return out
		}
	}
}

func (s *Screen) translate(out []core.Event, ev tcell.Event) []core.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if e, ok := MapKey(ev); ok {
			out = append(out, e)
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return out
}

func (s *Screen) color(c core.Color) tcell.Color {
	r, g, b := s.format.RGB(c)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (s *Screen) style(top, bottom core.Color) tcell.Style {
	key := [2]core.Color{top, bottom}
	if st, ok := s.styles[key]; ok {
		return st
	}
	st := tcell.StyleDefault.Foreground(s.color(top)).Background(s.color(bottom))
	s.styles[key] = st
	return st
}

// Present draws the surface as half blocks with the title on the row below.
func (s *Screen) Present(surf *core.Surface) error {
	s.screen.Clear()

	row := 0
	for y := 0; y < surf.Height(); y += 2 {
		for x := 0; x < surf.Width(); x++ {
			top := surf.At(x, y)
			bottom := top
			st := tcell.StyleDefault.Foreground(s.color(top))
			if y+1 < surf.Height() {
				bottom = surf.At(x, y+1)
				st = s.style(top, bottom)
			}
			s.screen.SetContent(x, row, halfBlock, nil, st)
		}
		row++
	}

	titleStyle := tcell.StyleDefault.Bold(true)
	for i, r := range []rune(s.title) {
		s.screen.SetContent(i, row, r, nil, titleStyle)
	}

	s.screen.Show()
	return nil
}

// SetTitle sets the status row text shown with the next frame.
func (s *Screen) SetTitle(title string) {
	s.title = title
}
