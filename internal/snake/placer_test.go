package snake

import (
	"errors"
	"math/rand"
	"testing"
)

func TestPlacerAvoidsOccupied(t *testing.T) {
	occupied := map[Point]bool{}
	for x := 0; x < 10; x++ {
		occupied[Point{x, 3}] = true
	}
	occupied[Point{0, 0}] = true
	occupied[Point{9, 9}] = true

	p := NewPlacer(10, 10, 4096, rand.New(rand.NewSource(7)))
	for i := 0; i < 1000; i++ {
		pt, err := p.Place(func(q Point) bool { return occupied[q] })
		if err != nil {
			t.Fatalf("Place() failed: %v", err)
		}
		if occupied[pt] {
			t.Fatalf("Place() returned occupied cell %v", pt)
		}
		if pt.X < 0 || pt.X >= 10 || pt.Y < 0 || pt.Y >= 10 {
			t.Fatalf("Place() returned out of bounds cell %v", pt)
		}
	}
}

func TestPlacerFallsBackToScan(t *testing.T) {
	free := Point{3, 2}
	p := NewPlacer(5, 5, 0, rand.New(rand.NewSource(1)))

	pt, err := p.Place(func(q Point) bool { return q != free })
	if err != nil {
		t.Fatalf("Place() failed: %v", err)
	}
	if pt != free {
		t.Errorf("Place() = %v, expected %v", pt, free)
	}
}

func TestPlacerNearlyFullBoard(t *testing.T) {
	free := Point{4, 4}
	p := NewPlacer(5, 5, 3, rand.New(rand.NewSource(11)))

	for i := 0; i < 50; i++ {
		pt, err := p.Place(func(q Point) bool { return q != free })
		if err != nil || pt != free {
			t.Fatalf("Place() = (%v, %v), expected (%v, nil)", pt, err, free)
		}
	}
}

func TestPlacerBoardFull(t *testing.T) {
	p := NewPlacer(3, 3, 10, rand.New(rand.NewSource(1)))

	_, err := p.Place(func(Point) bool { return true })
	if !errors.Is(err, ErrBoardFull) {
		t.Errorf("Place() error = %v, expected ErrBoardFull", err)
	}
}
