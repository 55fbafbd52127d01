package cursor

import (
	"testing"

	"github.com/calvike/fovea/internal/timing"
	"github.com/calvike/fovea/internal/token"
)

func sentenceTokens() []token.Token {
	// "One two. Three four. Five"
	return []token.Token{
		{Text: "One", IsSentenceStart: true},
		{Text: "two", Punctuation: []rune{'.'}},
		{Text: "Three", IsSentenceStart: true},
		{Text: "four", Punctuation: []rune{'.'}},
		{Text: "Five", IsSentenceStart: true},
	}
}

func TestCurrentEmptyStream(t *testing.T) {
	c := New(nil, 300, timing.DefaultConfig())
	if _, ok := c.Current(); ok {
		t.Fatalf("expected no current token for empty stream")
	}
	if d := c.CurrentDuration(); d != 0 {
		t.Fatalf("expected zero duration for empty stream, got %d", d)
	}
	if !c.AtEnd() {
		t.Fatalf("empty stream should report AtEnd")
	}
}

func TestAdvanceSaturates(t *testing.T) {
	c := New(sentenceTokens(), 300, timing.DefaultConfig())
	for i := 0; i < 10; i++ {
		c.Advance()
	}
	if c.Index() != c.Len()-1 {
		t.Fatalf("expected index %d, got %d", c.Len()-1, c.Index())
	}
	if !c.AtEnd() {
		t.Fatalf("expected AtEnd after saturating advance")
	}
	tok, ok := c.Current()
	if !ok || tok.Text != "Five" {
		t.Fatalf("expected final token, got %q", tok.Text)
	}
}

func TestJumpToNextSentence(t *testing.T) {
	c := New(sentenceTokens(), 300, timing.DefaultConfig())
	if !c.JumpToNextSentence() {
		t.Fatalf("expected a forward jump from index 0")
	}
	if c.Index() != 2 {
		t.Fatalf("expected index 2, got %d", c.Index())
	}
	if !c.JumpToNextSentence() {
		t.Fatalf("expected a forward jump from index 2")
	}
	if c.Index() != 4 {
		t.Fatalf("expected index 4, got %d", c.Index())
	}
	if c.JumpToNextSentence() {
		t.Fatalf("expected no jump past the last sentence")
	}
	if c.Index() != 4 {
		t.Fatalf("failed jump moved the cursor to %d", c.Index())
	}
}

func TestJumpToPreviousSentence(t *testing.T) {
	c := New(sentenceTokens(), 300, timing.DefaultConfig())
	c.Advance()
	c.Advance()
	c.Advance() // index 3, inside the second sentence
	if !c.JumpToPreviousSentence() {
		t.Fatalf("expected a backward jump")
	}
	if c.Index() != 2 {
		t.Fatalf("expected index 2, got %d", c.Index())
	}
	if !c.JumpToPreviousSentence() {
		t.Fatalf("expected a backward jump to the first sentence")
	}
	if c.Index() != 0 {
		t.Fatalf("expected index 0, got %d", c.Index())
	}
	if c.JumpToPreviousSentence() {
		t.Fatalf("expected no jump before the first sentence")
	}
	if c.Index() != 0 {
		t.Fatalf("failed jump moved the cursor to %d", c.Index())
	}
}

func TestJumpEmptyStream(t *testing.T) {
	c := New(nil, 300, timing.DefaultConfig())
	if c.JumpToNextSentence() || c.JumpToPreviousSentence() {
		t.Fatalf("jumps on an empty stream must not report movement")
	}
	if c.Index() != 0 {
		t.Fatalf("jump on empty stream moved the cursor to %d", c.Index())
	}
}

func TestAdjustWPMClamps(t *testing.T) {
	cfg := timing.DefaultConfig()
	c := New(sentenceTokens(), 1000, cfg)
	c.AdjustWPM(500)
	if c.WPM() != 1000 {
		t.Fatalf("expected clamp at 1000, got %d", c.WPM())
	}
	c.AdjustWPM(-2000)
	if c.WPM() != 50 {
		t.Fatalf("expected clamp at 50, got %d", c.WPM())
	}
	c.AdjustWPM(25)
	if c.WPM() != 75 {
		t.Fatalf("expected 75, got %d", c.WPM())
	}
}

func TestNewClampsInitialWPM(t *testing.T) {
	c := New(sentenceTokens(), 5000, timing.DefaultConfig())
	if c.WPM() != 1000 {
		t.Fatalf("expected initial clamp to 1000, got %d", c.WPM())
	}
}

func TestCurrentDurationTracksWPM(t *testing.T) {
	c := New(sentenceTokens(), 300, timing.DefaultConfig())
	if d := c.CurrentDuration(); d != 200 {
		t.Fatalf("expected 200ms at 300 wpm, got %d", d)
	}
	c.AdjustWPM(300)
	if d := c.CurrentDuration(); d != 100 {
		t.Fatalf("expected 100ms at 600 wpm, got %d", d)
	}
}
