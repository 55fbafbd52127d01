package canvas

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/rivo/uniseg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Vertical placement of the text block: its visual center sits at this
// fraction of canvas height.
const baselineFraction = 0.42

// ErrEmptyWord rejects composition of a word with no clusters.
var ErrEmptyWord = errors.New("cannot compose an empty word")

// ErrAnchorOutOfRange rejects an anchor index at or past the end of the
// word. Never clamped here: a bad index is a caller bug.
var ErrAnchorOutOfRange = errors.New("anchor index out of range for word")

// SplitAnchor divides a word into prefix, anchor cluster, and suffix.
// The split operates on grapheme clusters, not bytes, so multi-byte
// glyphs stay intact. Prefix and suffix may be empty.
func SplitAnchor(word string, anchor int) (prefix, anchorCluster, suffix string, err error) {
	if word == "" {
		return "", "", "", ErrEmptyWord
	}
	if anchor < 0 {
		return "", "", "", ErrAnchorOutOfRange
	}

	g := uniseg.NewGraphemes(word)
	i := 0
	for g.Next() {
		cluster := g.Str()
		switch {
		case i < anchor:
			prefix += cluster
		case i == anchor:
			anchorCluster = cluster
		default:
			suffix += cluster
		}
		i++
	}
	if anchor >= i {
		return "", "", "", fmt.Errorf("%w: index %d, length %d", ErrAnchorOutOfRange, anchor, i)
	}
	return prefix, anchorCluster, suffix, nil
}

// ComposeWord draws the word onto the canvas with the anchor cluster's
// visual center at the horizontal midpoint and the text block centered
// at the baseline fraction of canvas height. All validation happens
// before the first pixel is touched; on error the buffer is unchanged.
func (c *Canvas) ComposeWord(f *Font, theme Theme, word string, anchor int) error {
	if f == nil {
		return errors.New("no font available for composition")
	}
	prefix, anchorCluster, suffix, err := SplitAnchor(word, anchor)
	if err != nil {
		return err
	}

	prefixWidth := f.StringWidth(prefix)
	anchorWidth := f.StringWidth(anchorCluster)

	// Anchor center at canvas center: startX = cx - (prefix + anchor/2).
	centerX := fixed.I(c.Width() / 2)
	startX := centerX - prefixWidth - anchorWidth/2

	// Baseline so the ascent..descent block is centered vertically at
	// the configured fraction, not just bounding-box placed.
	m := f.Metrics()
	centerY := fixed.Int26_6(math.Round(baselineFraction * float64(c.Height()) * 64))
	baseline := centerY + (m.Ascent-m.Descent)/2

	c.Clear()

	d := font.Drawer{
		Dst:  c.img,
		Face: f.face,
		Dot:  fixed.Point26_6{X: startX, Y: baseline},
	}
	if prefix != "" {
		d.Src = image.NewUniform(theme.Text)
		d.DrawString(prefix)
	}
	d.Src = image.NewUniform(theme.Anchor)
	d.DrawString(anchorCluster)
	if suffix != "" {
		d.Src = image.NewUniform(theme.Text)
		d.DrawString(suffix)
	}
	return nil
}
