package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// Canvas is one frame's RGBA pixel buffer. It covers the whole reading
// zone so a single image transmission replaces the previous frame;
// allocate per frame, compose, transmit, discard.
type Canvas struct {
	img *image.RGBA
	bg  color.RGBA
}

// New allocates a canvas of the given pixel size.
func New(width, height int, bg color.RGBA) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %dx%d", width, height)
	}
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		bg:  bg,
	}, nil
}

// Clear fills the whole buffer with the background color.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.bg), image.Point{}, draw.Src)
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Rect.Dx() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// RGBA returns the raw 32-bit RGBA bytes, row-major.
func (c *Canvas) RGBA() []byte { return c.img.Pix }
