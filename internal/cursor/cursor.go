// Package cursor tracks the current position within a token stream.
package cursor

import (
	"github.com/calvike/fovea/internal/timing"
	"github.com/calvike/fovea/internal/token"
)

// Cursor owns an immutable token sequence and the current reading speed.
// It carries no timing drive of its own: the surrounding loop reads
// CurrentDuration to decide when to call Advance.
type Cursor struct {
	tokens []token.Token
	index  int
	wpm    int
	cfg    timing.Config
}

// New builds a cursor positioned at the first token. The initial WPM is
// clamped to the config bounds.
func New(tokens []token.Token, wpm int, cfg timing.Config) *Cursor {
	return &Cursor{
		tokens: tokens,
		wpm:    cfg.ClampWPM(wpm),
		cfg:    cfg,
	}
}

// Current returns the token under the cursor, or false if the stream is
// empty.
func (c *Cursor) Current() (token.Token, bool) {
	if len(c.tokens) == 0 {
		return token.Token{}, false
	}
	return c.tokens[c.index], true
}

// CurrentDuration returns the display time in milliseconds for the
// current token, or 0 for an empty stream.
func (c *Cursor) CurrentDuration() int64 {
	t, ok := c.Current()
	if !ok {
		return 0
	}
	return c.cfg.TokenDuration(t, c.wpm)
}

// Advance moves one token forward, saturating at the last index.
func (c *Cursor) Advance() {
	if c.index < len(c.tokens)-1 {
		c.index++
	}
}

// JumpToNextSentence scans forward for the next sentence start. It
// reports whether the cursor moved.
func (c *Cursor) JumpToNextSentence() bool {
	for i := c.index + 1; i < len(c.tokens); i++ {
		if c.tokens[i].IsSentenceStart {
			c.index = i
			return true
		}
	}
	return false
}

// JumpToPreviousSentence scans backward for the closest earlier sentence
// start. It reports whether the cursor moved.
func (c *Cursor) JumpToPreviousSentence() bool {
	for i := c.index - 1; i >= 0; i-- {
		if c.tokens[i].IsSentenceStart {
			c.index = i
			return true
		}
	}
	return false
}

// AdjustWPM shifts the reading speed by delta, clamped to the configured
// bounds.
func (c *Cursor) AdjustWPM(delta int) {
	c.wpm = c.cfg.ClampWPM(c.wpm + delta)
}

// WPM returns the current reading speed.
func (c *Cursor) WPM() int { return c.wpm }

// Index returns the current token index.
func (c *Cursor) Index() int { return c.index }

// Len returns the number of tokens in the stream.
func (c *Cursor) Len() int { return len(c.tokens) }

// AtEnd reports whether the cursor sits on the final token, or the
// stream is empty.
func (c *Cursor) AtEnd() bool {
	return len(c.tokens) == 0 || c.index == len(c.tokens)-1
}
