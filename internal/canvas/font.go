// Package canvas composes a single RSVP frame into an RGBA pixel buffer.
package canvas

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Font is an explicitly constructed face plus its vertical metrics. It
// is passed by reference to every consumer; there is no lazily
// initialized global.
type Font struct {
	face font.Face
	size float64
}

// LoadDefault builds a face from the embedded Go Regular font at the
// given pixel size.
func LoadDefault(size float64) (*Font, error) {
	return newFont(goregular.TTF, size)
}

// LoadFile builds a face from a TTF/OTF file at the given pixel size.
func LoadFile(path string, size float64) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	return newFont(data, size)
}

func newFont(data []byte, size float64) (*Font, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size must be positive, got %v", size)
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build font face: %w", err)
	}
	return &Font{face: face, size: size}, nil
}

// Size returns the pixel size the face was built at.
func (f *Font) Size() float64 { return f.size }

// Metrics returns the face's vertical metrics.
func (f *Font) Metrics() font.Metrics {
	return f.face.Metrics()
}

// StringWidth measures the advance of s in sub-pixel units.
func (f *Font) StringWidth(s string) fixed.Int26_6 {
	return font.MeasureString(f.face, s)
}

// Close releases the face's rasterizer resources.
func (f *Font) Close() error {
	return f.face.Close()
}
