package core

// Surface is a 2D pixel buffer the game renders into.
// Pixels are packed Color tokens addressed as pix[y*stride+x], the same
// layout a windowing layer exposes for its framebuffer. Backends read the
// buffer back to present it.
type Surface struct {
	width  int
	height int
	stride int
	pix    []Color
}

// NewSurface creates a surface whose stride equals its width.
func NewSurface(width, height int) *Surface {
	return NewSurfaceStride(width, height, width)
}

// NewSurfaceStride creates a surface with an explicit row length.
// A stride smaller than width is raised to width.
func NewSurfaceStride(width, height, stride int) *Surface {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	stride = Max(stride, width)
	return &Surface{
		width:  width,
		height: height,
		stride: stride,
		pix:    make([]Color, stride*height),
	}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Stride returns the number of pixels between the starts of two rows.
func (s *Surface) Stride() int {
	return s.stride
}

// Pix exposes the underlying buffer. Callers must not keep it across frames.
func (s *Surface) Pix() []Color {
	return s.pix
}

// Fill sets every pixel to c.
func (s *Surface) Fill(c Color) {
	for i := range s.pix {
		s.pix[i] = c
	}
}

// Set writes a pixel at (x, y).
// Out-of-bounds coordinates are silently ignored.
func (s *Surface) Set(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.pix[y*s.stride+x] = c
}

// At returns the pixel at (x, y), or the zero color out of bounds.
func (s *Surface) At(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0
	}
	return s.pix[y*s.stride+x]
}

// FillRect fills a rectangular area, clipped to the surface.
func (s *Surface) FillRect(r Rect, c Color) {
	x0 := Max(r.X, 0)
	y0 := Max(r.Y, 0)
	x1 := Min(r.Right(), s.width)
	y1 := Min(r.Bottom(), s.height)
	for y := y0; y < y1; y++ {
		row := s.pix[y*s.stride : y*s.stride+s.width]
		for x := x0; x < x1; x++ {
			row[x] = c
		}
	}
}
