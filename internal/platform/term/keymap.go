// Package term plays the game on a raw tcell screen. Like the tui backend it
// packs two pixel rows into each terminal cell, but it owns the event loop
// and paces frames through loop.Run.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/pixel-snake/internal/core"
)

// MapKey translates a tcell key event to a game event.
// The second result is false for keys the game does not use.
func MapKey(ev *tcell.EventKey) (core.Event, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return core.Quit(), true
	case tcell.KeyUp:
		return core.KeyDown(core.ActionUp), true
	case tcell.KeyDown:
		return core.KeyDown(core.ActionDown), true
	case tcell.KeyLeft:
		return core.KeyDown(core.ActionLeft), true
	case tcell.KeyRight:
		return core.KeyDown(core.ActionRight), true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return core.Quit(), true
		case 'w', 'W', 'k', 'K':
			return core.KeyDown(core.ActionUp), true
		case 's', 'S', 'j', 'J':
			return core.KeyDown(core.ActionDown), true
		case 'a', 'A', 'h', 'H':
			return core.KeyDown(core.ActionLeft), true
		case 'd', 'D', 'l', 'L':
			return core.KeyDown(core.ActionRight), true
		}
	}
	return core.Event{}, false
}
