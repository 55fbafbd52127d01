// Package timing converts tokens and reading speed into display durations.
package timing

import (
	"math"

	"github.com/calvike/fovea/internal/token"
)

// Config holds the timing model parameters. Immutable after construction.
type Config struct {
	// WPM bounds enforced by the cursor.
	MinWPM int
	MaxWPM int

	// Words longer than LongWordThreshold characters get LongWordPenalty.
	LongWordThreshold int
	LongWordPenalty   float64

	// Per-mark display multipliers. Only the largest mark on a token
	// applies, never a product or sum.
	PeriodMultiplier      float64
	CommaMultiplier       float64
	QuestionMultiplier    float64
	ExclamationMultiplier float64
	NewlineMultiplier     float64
}

// DefaultConfig returns the standard timing parameters.
func DefaultConfig() Config {
	return Config{
		MinWPM:                50,
		MaxWPM:                1000,
		LongWordThreshold:     10,
		LongWordPenalty:       1.15,
		PeriodMultiplier:      3.0,
		CommaMultiplier:       1.5,
		QuestionMultiplier:    3.0,
		ExclamationMultiplier: 3.0,
		NewlineMultiplier:     4.0,
	}
}

// WPMToMilliseconds returns the base per-word display time. Rounding is
// half away from zero: 165 WPM is 364ms, not the truncated 363.
func WPMToMilliseconds(wpm int) int64 {
	if wpm < 1 {
		wpm = 1
	}
	return int64(math.Round(60000.0 / float64(wpm)))
}

// TokenDuration returns the display time for a token in milliseconds.
// An empty-text token with a newline mark still earns that mark's
// multiplier.
func (c Config) TokenDuration(t token.Token, wpm int) int64 {
	base := float64(WPMToMilliseconds(wpm))
	return int64(math.Round(base * c.punctuationMultiplier(t.Punctuation) * c.lengthPenalty(t.Text)))
}

func (c Config) punctuationMultiplier(marks []rune) float64 {
	mult := 1.0
	for _, m := range marks {
		mult = math.Max(mult, c.markMultiplier(m))
	}
	return mult
}

func (c Config) markMultiplier(m rune) float64 {
	switch m {
	case '.':
		return c.PeriodMultiplier
	case ',':
		return c.CommaMultiplier
	case '?':
		return c.QuestionMultiplier
	case '!':
		return c.ExclamationMultiplier
	case '\n':
		return c.NewlineMultiplier
	default:
		return 1.0
	}
}

func (c Config) lengthPenalty(word string) float64 {
	if len([]rune(word)) > c.LongWordThreshold {
		return c.LongWordPenalty
	}
	return 1.0
}

// ClampWPM bounds a requested speed to the configured range.
func (c Config) ClampWPM(wpm int) int {
	if wpm < c.MinWPM {
		return c.MinWPM
	}
	if wpm > c.MaxWPM {
		return c.MaxWPM
	}
	return wpm
}
