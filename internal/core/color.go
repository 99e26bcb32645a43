package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an opaque packed pixel value.
// It is produced by a PixelFormat and handed back to the same format when a
// backend needs the RGB components again.
type Color uint32

// PixelFormat maps RGB triples to packed colors and back.
type PixelFormat interface {
	MapRGB(r, g, b uint8) Color
	RGB(c Color) (r, g, b uint8)
}

// RGB888 packs colors as 0x00RRGGBB.
var RGB888 PixelFormat = rgb888{}

type rgb888 struct{}

func (rgb888) MapRGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (rgb888) RGB(c Color) (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// ParseHex converts a "#rrggbb" (or "rrggbb") string using the given format.
func ParseHex(f PixelFormat, s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return 0, fmt.Errorf("invalid color %q: expected #rrggbb", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return f.MapRGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Hex formats a color as "#rrggbb" using the given format.
func Hex(f PixelFormat, c Color) string {
	r, g, b := f.RGB(c)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
