package timing

import (
	"testing"

	"github.com/calvike/fovea/internal/token"
)

func TestWPMToMilliseconds(t *testing.T) {
	tests := []struct {
		wpm  int
		want int64
	}{
		{165, 364},
		{300, 200},
		{333, 180},
		{350, 171},
		{600, 100},
		{50, 1200},
		{1000, 60},
	}
	for _, tc := range tests {
		if got := WPMToMilliseconds(tc.wpm); got != tc.want {
			t.Fatalf("WPMToMilliseconds(%d) = %d, expected %d", tc.wpm, got, tc.want)
		}
	}
}

func TestWPMToMillisecondsNonPositive(t *testing.T) {
	if got := WPMToMilliseconds(0); got != 60000 {
		t.Fatalf("WPMToMilliseconds(0) = %d, expected 60000", got)
	}
}

func TestTokenDurationPlainWord(t *testing.T) {
	cfg := DefaultConfig()
	tok := token.Token{Text: "hello"}
	if got := cfg.TokenDuration(tok, 300); got != 200 {
		t.Fatalf("expected 200ms, got %d", got)
	}
}

func TestTokenDurationPunctuationTakesMax(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name  string
		punct []rune
		want  int64
	}{
		{"period", []rune{'.'}, 600},
		{"comma", []rune{','}, 300},
		{"question", []rune{'?'}, 600},
		{"newline", []rune{'\n'}, 800},
		{"period and exclamation do not stack", []rune{'.', '!'}, 600},
		{"comma below period", []rune{',', '.'}, 600},
	}
	for _, tc := range tests {
		tok := token.Token{Text: "word", Punctuation: tc.punct}
		if got := cfg.TokenDuration(tok, 300); got != tc.want {
			t.Fatalf("%s: expected %dms, got %d", tc.name, tc.want, got)
		}
	}
}

func TestTokenDurationLongWordPenalty(t *testing.T) {
	cfg := DefaultConfig()
	short := token.Token{Text: "motivation"}
	long := token.Token{Text: "extraordinary"}
	if got := cfg.TokenDuration(short, 300); got != 200 {
		t.Fatalf("10-char word: expected 200ms, got %d", got)
	}
	// 200 * 1.15 = 230
	if got := cfg.TokenDuration(long, 300); got != 230 {
		t.Fatalf("long word: expected 230ms, got %d", got)
	}
}

func TestTokenDurationPenaltyCombinesWithPunctuation(t *testing.T) {
	cfg := DefaultConfig()
	tok := token.Token{Text: "extraordinary", Punctuation: []rune{'.'}}
	// 200 * 3.0 * 1.15 = 690
	if got := cfg.TokenDuration(tok, 300); got != 690 {
		t.Fatalf("expected 690ms, got %d", got)
	}
}

func TestTokenDurationEndToEnd(t *testing.T) {
	cfg := DefaultConfig()
	tokens := []token.Token{
		{Text: "Hello"},
		{Text: "world", Punctuation: []rune{'.'}},
	}
	want := []int64{200, 600}
	for i, tok := range tokens {
		if got := cfg.TokenDuration(tok, 300); got != want[i] {
			t.Fatalf("token %d: expected %dms, got %d", i, want[i], got)
		}
	}
}

func TestClampWPM(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		wpm  int
		want int
	}{
		{25, 50},
		{50, 50},
		{300, 300},
		{1000, 1000},
		{1500, 1000},
	}
	for _, tc := range tests {
		if got := cfg.ClampWPM(tc.wpm); got != tc.want {
			t.Fatalf("ClampWPM(%d) = %d, expected %d", tc.wpm, got, tc.want)
		}
	}
}
