package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-snake/internal/core"
)

const halfBlock = "▀"

// cellColors is the pair of pixels shown by one terminal cell.
type cellColors struct {
	top, bottom core.Color
	single      bool // last row of an odd-height surface
}

// SurfaceRenderer converts surfaces to styled half-block text.
// Styles are cached per color pair since a board uses only a handful.
type SurfaceRenderer struct {
	format core.PixelFormat
	styles map[cellColors]lipgloss.Style
}

// NewSurfaceRenderer creates a renderer decoding colors with f.
func NewSurfaceRenderer(f core.PixelFormat) *SurfaceRenderer {
	return &SurfaceRenderer{
		format: f,
		styles: make(map[cellColors]lipgloss.Style),
	}
}

func (r *SurfaceRenderer) style(c cellColors) lipgloss.Style {
	if st, ok := r.styles[c]; ok {
		return st
	}
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(core.Hex(r.format, c.top)))
	if !c.single {
		st = st.Background(lipgloss.Color(core.Hex(r.format, c.bottom)))
	}
	r.styles[c] = st
	return st
}

// Render converts a surface to text, one line per two pixel rows.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (r *SurfaceRenderer) Render(s *core.Surface) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*(s.Height()/2+1)*4 + s.Height())

	at := func(x, y int) cellColors {
		if y+1 >= s.Height() {
			return cellColors{top: s.At(x, y), single: true}
		}
		return cellColors{top: s.At(x, y), bottom: s.At(x, y+1)}
	}

	for y := 0; y < s.Height(); y += 2 {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := at(x, y)
			n := 0
			for x < s.Width() && at(x, y) == start {
				n++
				x++
			}
			sb.WriteString(r.style(start).Render(strings.Repeat(halfBlock, n)))
		}
	}
	return sb.String()
}

// TerminalSize returns the number of columns and rows a surface of the
// given pixel size occupies.
func TerminalSize(width, height int) (cols, rows int) {
	return width, (height + 1) / 2
}
