// Package token splits raw text into timed reading units.
package token

import "strings"

// Token is a single reading unit: a word with its trailing punctuation
// peeled off. A synthetic newline token has empty Text and a '\n' mark.
// Tokens are immutable after tokenization.
type Token struct {
	Text            string
	Punctuation     []rune
	IsSentenceStart bool
}

// Reconstructed returns the word with its trailing punctuation reattached.
func (t Token) Reconstructed() string {
	if len(t.Punctuation) == 0 {
		return t.Text
	}
	var b strings.Builder
	b.WriteString(t.Text)
	for _, p := range t.Punctuation {
		b.WriteRune(p)
	}
	return b.String()
}

// HasNewline reports whether the token carries a newline mark.
func (t Token) HasNewline() bool {
	for _, p := range t.Punctuation {
		if p == '\n' {
			return true
		}
	}
	return false
}

func (t Token) hasSentenceTerminator() bool {
	for _, p := range t.Punctuation {
		if isSentenceTerminator(p) {
			return true
		}
	}
	return false
}

func isSentenceTerminator(r rune) bool {
	return r == '.' || r == '?' || r == '!'
}

func isComma(r rune) bool {
	return r == ','
}
