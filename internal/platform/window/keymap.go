// Package window plays the game in a native window through Ebitengine.
// Ebitengine owns the main loop; every Update call runs one game frame.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/pixel-snake/internal/core"
)

// MapKey translates an Ebitengine key to a game event.
// The second result is false for keys the game does not use.
func MapKey(k ebiten.Key) (core.Event, bool) {
	switch k {
	case ebiten.KeyEscape, ebiten.KeyQ:
		return core.Quit(), true
	case ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyK:
		return core.KeyDown(core.ActionUp), true
	case ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyJ:
		return core.KeyDown(core.ActionDown), true
	case ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH:
		return core.KeyDown(core.ActionLeft), true
	case ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL:
		return core.KeyDown(core.ActionRight), true
	}
	return core.Event{}, false
}
