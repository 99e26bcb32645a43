package snake

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/pixel-snake/internal/core"
)

// Size limits keep the cell count and the surface allocation bounded.
const (
	MaxBoardSide   = 512  // Cells per board edge
	MaxCellSize    = 128  // Pixels per cell edge
	MaxSurfaceSide = 8192 // Pixels per surface edge
)

// Palette holds the packed colors used by the renderers and for new segments.
type Palette struct {
	BoardLight    core.Color
	BoardDark     core.Color
	BodyPrimary   core.Color
	BodySecondary core.Color
	Food          core.Color
}

// Config is the immutable setup of a game. It is passed to New and to the
// renderers and never changes while a game runs.
type Config struct {
	Width  int // Board width in cells
	Height int // Board height in cells

	InitialLength        int // Segments at spawn
	FoodCount            int // Food items kept on the board
	MaxPlacementAttempts int // Random samples before falling back to a free-cell scan

	CellSize int // Pixels per cell edge
	Palette  Palette
}

// DefaultConfig returns a 20x20 board with one food item.
func DefaultConfig() Config {
	f := core.RGB888
	return Config{
		Width:                20,
		Height:               20,
		InitialLength:        3,
		FoodCount:            1,
		MaxPlacementAttempts: 4096,
		CellSize:             25,
		Palette: Palette{
			BoardLight:    f.MapRGB(0xaa, 0xd7, 0x51),
			BoardDark:     f.MapRGB(0xa2, 0xd1, 0x49),
			BodyPrimary:   f.MapRGB(0x46, 0x74, 0xe9),
			BodySecondary: f.MapRGB(0x3b, 0x5f, 0xc0),
			Food:          f.MapRGB(0xe7, 0x47, 0x1d),
		},
	}
}

// Validate reports the first problem with the configuration.
func (c Config) Validate() error {
	switch {
	case c.Width < 2 || c.Height < 2:
		return fmt.Errorf("board must be at least 2x2, got %dx%d", c.Width, c.Height)
	case c.Width > MaxBoardSide || c.Height > MaxBoardSide:
		return fmt.Errorf("board must be at most %dx%d, got %dx%d",
			MaxBoardSide, MaxBoardSide, c.Width, c.Height)
	case c.InitialLength < 1:
		return errors.New("initial length must be at least 1")
	case c.InitialLength > c.Width:
		return fmt.Errorf("initial length %d does not fit a board %d cells wide", c.InitialLength, c.Width)
	case c.FoodCount < 1:
		return errors.New("food count must be at least 1")
	case c.InitialLength+c.FoodCount > c.Width*c.Height:
		return fmt.Errorf("board %dx%d has no room for %d segments and %d food",
			c.Width, c.Height, c.InitialLength, c.FoodCount)
	case c.MaxPlacementAttempts < 0:
		return errors.New("max placement attempts must not be negative")
	case c.CellSize < 1 || c.CellSize > MaxCellSize:
		return fmt.Errorf("cell size must be between 1 and %d, got %d", MaxCellSize, c.CellSize)
	case c.Width*c.CellSize > MaxSurfaceSide || c.Height*c.CellSize > MaxSurfaceSide:
		w, h := c.SurfaceSize()
		return fmt.Errorf("surface %dx%d exceeds %dx%d pixels", w, h, MaxSurfaceSide, MaxSurfaceSide)
	}
	return nil
}

// SurfaceSize returns the pixel dimensions needed to render the board.
func (c Config) SurfaceSize() (int, int) {
	return c.Width * c.CellSize, c.Height * c.CellSize
}

// bodyColor picks the color of the segment that makes the snake n long.
func (c Config) bodyColor(n int) core.Color {
	if n%2 == 1 {
		return c.Palette.BodyPrimary
	}
	return c.Palette.BodySecondary
}
