package snake

import "github.com/vovakirdan/pixel-snake/internal/core"

// BoardRenderer paints the checkerboard background, one square per cell.
type BoardRenderer struct {
	cols, rows int
	cell       int
	light      core.Color
	dark       core.Color
}

// NewBoardRenderer creates a board renderer for the given configuration.
func NewBoardRenderer(cfg Config) BoardRenderer {
	return BoardRenderer{
		cols:  cfg.Width,
		rows:  cfg.Height,
		cell:  cfg.CellSize,
		light: cfg.Palette.BoardLight,
		dark:  cfg.Palette.BoardDark,
	}
}

// Draw repaints the whole surface: dark everywhere, then the light squares.
func (b BoardRenderer) Draw(dst *core.Surface) {
	dst.Fill(b.dark)
	for row := range b.rows {
		for col := row % 2; col < b.cols; col += 2 {
			dst.FillRect(cellRect(col, row, b.cell), b.light)
		}
	}
}

// EntityRenderer paints food discs and snake segments.
type EntityRenderer struct {
	cell int
	food core.Color
}

// NewEntityRenderer creates an entity renderer for the given configuration.
func NewEntityRenderer(cfg Config) EntityRenderer {
	return EntityRenderer{
		cell: cfg.CellSize,
		food: cfg.Palette.Food,
	}
}

// Draw paints food first and the snake on top of it.
func (e EntityRenderer) Draw(dst *core.Surface, s *State) {
	for _, f := range s.foods {
		e.drawDisc(dst, f)
	}
	// Tail first so the head stays visible when segments overlap.
	for i := len(s.segments) - 1; i >= 0; i-- {
		seg := s.segments[i]
		dst.FillRect(cellRect(seg.Pos.X, seg.Pos.Y, e.cell), seg.Color)
	}
}

// drawDisc fills the pixels whose centers lie inside the cell's inscribed circle.
func (e EntityRenderer) drawDisc(dst *core.Surface, p Point) {
	n := e.cell
	x0, y0 := p.X*n, p.Y*n
	// Doubled coordinates keep the pixel-center test in integers.
	for dy := range n {
		ey := 2*dy + 1 - n
		for dx := range n {
			ex := 2*dx + 1 - n
			if ex*ex+ey*ey <= n*n {
				dst.Set(x0+dx, y0+dy, e.food)
			}
		}
	}
}

// Renderer draws a complete frame.
type Renderer struct {
	Board    BoardRenderer
	Entities EntityRenderer
}

// NewRenderer creates the board and entity renderers for cfg.
func NewRenderer(cfg Config) Renderer {
	return Renderer{
		Board:    NewBoardRenderer(cfg),
		Entities: NewEntityRenderer(cfg),
	}
}

// Render paints the board, then food, then the snake.
func (r Renderer) Render(dst *core.Surface, s *State) {
	r.Board.Draw(dst)
	r.Entities.Draw(dst, s)
}

func cellRect(col, row, size int) core.Rect {
	return core.NewRect(col*size, row*size, size, size)
}
