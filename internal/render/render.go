// Package render defines the pluggable word-rendering backends: the
// Kitty graphics backend with sub-pixel anchoring, and the
// character-cell fallback for terminals without pixel graphics.
package render

import "errors"

// Renderer is the capability surface a reading session drives. Concrete
// backends are chosen at startup by capability detection.
type Renderer interface {
	// Init allocates backend resources. Called once before rendering.
	Init() error
	// RenderWord displays a word with the given anchor cluster index
	// held at the fixed reading position.
	RenderWord(word string, anchor int) error
	// Clear removes the currently displayed word.
	Clear() error
	// SupportsSubpixelOVP reports whether anchoring is sub-pixel
	// accurate or snapped to character cells.
	SupportsSubpixelOVP() bool
	// Cleanup releases resources and removes any leftover output.
	Cleanup() error
}

// ErrNotReady marks a recoverable resource failure: the frame is
// skipped, the previous frame stays on screen, and the next tick
// retries.
var ErrNotReady = errors.New("renderer resources not ready")
