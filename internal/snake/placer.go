package snake

import (
	"errors"
	"math/rand"
)

// ErrBoardFull is returned when no free cell is left for food.
var ErrBoardFull = errors.New("snake: no free cell for food")

// Placer picks random free board cells for food.
type Placer struct {
	width       int
	height      int
	maxAttempts int
	rng         *rand.Rand
}

// NewPlacer creates a placer for a width x height board.
func NewPlacer(width, height, maxAttempts int, rng *rand.Rand) *Placer {
	return &Placer{
		width:       width,
		height:      height,
		maxAttempts: maxAttempts,
		rng:         rng,
	}
}

// Place samples uniform random cells until one is not occupied.
// After maxAttempts misses it picks uniformly among the remaining free cells,
// so a crowded board costs one scan instead of an unbounded search.
func (p *Placer) Place(occupied func(Point) bool) (Point, error) {
	for range p.maxAttempts {
		pt := Point{X: p.rng.Intn(p.width), Y: p.rng.Intn(p.height)}
		if !occupied(pt) {
			return pt, nil
		}
	}

	var free []Point
	for y := range p.height {
		for x := range p.width {
			pt := Point{X: x, Y: y}
			if !occupied(pt) {
				free = append(free, pt)
			}
		}
	}
	if len(free) == 0 {
		return Point{}, ErrBoardFull
	}
	return free[p.rng.Intn(len(free))], nil
}
