package loop

import (
	"github.com/vovakirdan/pixel-snake/internal/core"
	"github.com/vovakirdan/pixel-snake/internal/snake"
)

// handleInput applies one frame of events in arrival order and reports a
// quit request. Only the first turn that differs from the frame-start
// direction is applied; reversal is judged against that same direction.
// Once the game has ended, turns are dropped but quit still works.
func (l *Loop) handleInput(events []core.Event) bool {
	start := l.state.Direction()
	steer := l.state.Status() == snake.StatusRunning
	turned := false

	for _, ev := range events {
		switch ev.Type {
		case core.EventQuit:
			return true
		case core.EventKeyDown:
			if ev.Action == core.ActionQuit {
				return true
			}
			if !steer || turned {
				continue
			}
			d, ok := snake.DirectionFor(ev.Action)
			if !ok || d == start || d == start.Reverse() {
				continue
			}
			if l.state.SetDirection(d) {
				turned = true
				l.logger.Debug("turn", "from", start, "to", d)
			}
		}
	}
	return false
}
