// Package snake implements the toroidal Snake simulation and its pixel
// renderers. It knows nothing about terminals or windows; backends feed it
// directions and present the surface it paints.
package snake

import (
	"fmt"
	"math/rand"
)

// State is the complete simulation state of one game.
type State struct {
	cfg    Config
	placer *Placer
	tick   uint64

	segments []Segment // Head at index 0
	foods    []Point
	dir      Direction
	score    int

	status  Status
	outcome Outcome
}

// StepResult describes what happened during one Step.
type StepResult struct {
	Eaten    int
	Collided bool
	Status   Status
}

// New creates a game with the snake centered on the board, moving right, and
// cfg.FoodCount food items placed on free cells.
func New(cfg Config, seed int64) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid snake config: %w", err)
	}

	rng := rand.New(rand.NewSource(seed))
	s := &State{
		cfg:    cfg,
		placer: NewPlacer(cfg.Width, cfg.Height, cfg.MaxPlacementAttempts, rng),
		dir:    DirRight,
	}

	cx, cy := cfg.Width/2, cfg.Height/2
	s.segments = make([]Segment, 0, cfg.InitialLength)
	for i := range cfg.InitialLength {
		x := (cx - i + cfg.Width) % cfg.Width
		s.segments = append(s.segments, Segment{
			Pos:   Point{X: x, Y: cy},
			Color: cfg.bodyColor(i + 1),
		})
	}

	for range cfg.FoodCount {
		p, err := s.placeFood()
		if err != nil {
			return nil, err
		}
		s.foods = append(s.foods, p)
	}

	return s, nil
}

// Config returns the configuration the game was created with.
func (s *State) Config() Config {
	return s.cfg
}

// SetDirection latches a new direction unless it reverses the current one.
// Returns true if the direction changed.
func (s *State) SetDirection(d Direction) bool {
	if d == s.dir.Reverse() || d == s.dir {
		return false
	}
	s.dir = d
	return true
}

// Advance moves the snake one cell: every trailing segment takes its
// predecessor's position, then the head steps in the latched direction and
// wraps around the board edges.
func (s *State) Advance() {
	// Descending order so each segment reads its predecessor before it moves.
	for i := len(s.segments) - 1; i >= 1; i-- {
		s.segments[i].Pos = s.segments[i-1].Pos
	}

	head := &s.segments[0].Pos
	switch s.dir {
	case DirUp:
		head.Y--
	case DirDown:
		head.Y++
	case DirLeft:
		head.X--
	case DirRight:
		head.X++
	}

	switch head.X {
	case s.cfg.Width:
		head.X = 0
	case -1:
		head.X = s.cfg.Width - 1
	}
	switch head.Y {
	case s.cfg.Height:
		head.Y = 0
	case -1:
		head.Y = s.cfg.Height - 1
	}
}

// DetectCollision reports whether any body segment shares the head's cell.
func (s *State) DetectCollision() bool {
	head := s.segments[0].Pos
	for _, seg := range s.segments[1:] {
		if seg.Pos == head {
			return true
		}
	}
	return false
}

// ResolveConsumption eats every food item under the head. Each one adds a
// point and a tail segment at the current tail position, and is replaced by
// a new food item on a free cell. Returns the number eaten and ErrBoardFull
// if a replacement could not be placed.
func (s *State) ResolveConsumption() (int, error) {
	head := s.segments[0].Pos
	eaten := 0
	for i := 0; i < len(s.foods); i++ {
		if s.foods[i] != head {
			continue
		}
		s.score++
		s.grow()
		eaten++

		p, err := s.placeFood()
		if err != nil {
			s.foods = append(s.foods[:i], s.foods[i+1:]...)
			return eaten, err
		}
		// The replacement is never under the head, so the scan can go on.
		s.foods[i] = p
	}
	return eaten, nil
}

// Step runs one frame of simulation: advance, then collision, then
// consumption. It does nothing once the game has ended.
func (s *State) Step() StepResult {
	if s.status == StatusEnded {
		return StepResult{Status: s.status}
	}
	s.tick++

	s.Advance()
	if s.DetectCollision() {
		s.end(OutcomeCollision)
		return StepResult{Collided: true, Status: s.status}
	}

	eaten, err := s.ResolveConsumption()
	if err != nil {
		s.end(OutcomeBoardFull)
	}
	return StepResult{Eaten: eaten, Status: s.status}
}

func (s *State) end(o Outcome) {
	s.status = StatusEnded
	s.outcome = o
}

// grow appends a tail segment on top of the current tail.
func (s *State) grow() {
	tail := s.segments[len(s.segments)-1].Pos
	s.segments = append(s.segments, Segment{
		Pos:   tail,
		Color: s.cfg.bodyColor(len(s.segments) + 1),
	})
}

// placeFood returns a cell free of snake segments and other food.
func (s *State) placeFood() (Point, error) {
	return s.placer.Place(s.occupied)
}

func (s *State) occupied(p Point) bool {
	for _, seg := range s.segments {
		if seg.Pos == p {
			return true
		}
	}
	for _, f := range s.foods {
		if f == p {
			return true
		}
	}
	return false
}

// Segments returns a copy of the snake body, head first.
func (s *State) Segments() []Segment {
	out := make([]Segment, len(s.segments))
	copy(out, s.segments)
	return out
}

// Foods returns a copy of the food positions.
func (s *State) Foods() []Point {
	out := make([]Point, len(s.foods))
	copy(out, s.foods)
	return out
}

// Head returns the head position.
func (s *State) Head() Point {
	return s.segments[0].Pos
}

// Len returns the number of segments.
func (s *State) Len() int {
	return len(s.segments)
}

// Direction returns the latched direction.
func (s *State) Direction() Direction {
	return s.dir
}

// Score returns the number of food items eaten.
func (s *State) Score() int {
	return s.score
}

// Status returns whether the game is still running.
func (s *State) Status() Status {
	return s.status
}

// Outcome returns why the game ended, or OutcomeNone while running.
func (s *State) Outcome() Outcome {
	return s.outcome
}

// Ticks returns the number of simulated frames.
func (s *State) Ticks() uint64 {
	return s.tick
}
