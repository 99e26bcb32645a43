package window

import "github.com/vovakirdan/pixel-snake/internal/core"

// PackRGBA writes the surface into dst as opaque RGBA bytes, row by row.
// dst must hold 4*width*height bytes.
func PackRGBA(dst []byte, s *core.Surface, f core.PixelFormat) {
	w, h := s.Width(), s.Height()
	pix := s.Pix()
	for y := 0; y < h; y++ {
		src := pix[y*s.Stride() : y*s.Stride()+w]
		out := dst[y*w*4 : (y+1)*w*4]
		for x, c := range src {
			r, g, b := f.RGB(c)
			out[x*4] = r
			out[x*4+1] = g
			out[x*4+2] = b
			out[x*4+3] = 0xff
		}
	}
}
