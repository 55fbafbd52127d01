package canvas

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Theme holds the frame colors: background fill, neutral text, and the
// highlighted anchor glyph.
type Theme struct {
	Background color.RGBA
	Text       color.RGBA
	Anchor     color.RGBA
}

// DefaultTheme returns the stock palette: stormy dark background, light
// blue text, coral red anchor.
func DefaultTheme() Theme {
	return Theme{
		Background: color.RGBA{R: 0x1A, G: 0x1B, B: 0x26, A: 0xFF},
		Text:       color.RGBA{R: 0xA9, G: 0xB1, B: 0xD6, A: 0xFF},
		Anchor:     color.RGBA{R: 0xF7, G: 0x76, B: 0x8E, A: 0xFF},
	}
}

// ParseHexColor parses "#RRGGBB" into an opaque RGBA color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xFF,
	}, nil
}
