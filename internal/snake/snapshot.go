package snake

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick     uint64
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Dir      Direction
	Foods    []Point
	Status   Status
	Outcome  Outcome
}

// Snapshot returns the current game snapshot.
func (s *State) Snapshot() Snapshot {
	head := s.Head()
	return Snapshot{
		Tick:     s.tick,
		Score:    s.score,
		SnakeLen: len(s.segments),
		HeadX:    head.X,
		HeadY:    head.Y,
		Dir:      s.dir,
		Foods:    s.Foods(),
		Status:   s.status,
		Outcome:  s.outcome,
	}
}
