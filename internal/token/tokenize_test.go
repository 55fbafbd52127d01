package token

import (
	"reflect"
	"testing"
)

func TestTokenizeEmpty(t *testing.T) {
	if got := Tokenize(""); len(got) != 0 {
		t.Fatalf("expected no tokens, got %d", len(got))
	}
}

func TestTokenizePunctuationPeel(t *testing.T) {
	tests := []struct {
		word  string
		text  string
		punct []rune
	}{
		{"hello", "hello", nil},
		{"hello.", "hello", []rune{'.'}},
		{"hello?!", "hello", []rune{'?', '!'}},
		{"wait...", "wait", []rune{'.', '.', '.'}},
		{"a,b", "a,b", nil},
		{"x,", "x", []rune{','}},
	}
	for _, tc := range tests {
		tokens := Tokenize(tc.word)
		if len(tokens) != 1 {
			t.Fatalf("%q: expected 1 token, got %d", tc.word, len(tokens))
		}
		tok := tokens[0]
		if tok.Text != tc.text {
			t.Fatalf("%q: expected text %q, got %q", tc.word, tc.text, tok.Text)
		}
		if !reflect.DeepEqual(tok.Punctuation, tc.punct) {
			t.Fatalf("%q: expected punctuation %q, got %q", tc.word, tc.punct, tok.Punctuation)
		}
		if tok.Reconstructed() != tc.word {
			t.Fatalf("%q: reconstructed %q", tc.word, tok.Reconstructed())
		}
	}
}

func TestTokenizeNewlineTokens(t *testing.T) {
	tokens := Tokenize("one two\nthree")
	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		texts[i] = tok.Text
	}
	want := []string{"one", "two", "", "three"}
	if !reflect.DeepEqual(texts, want) {
		t.Fatalf("expected texts %v, got %v", want, texts)
	}
	if !tokens[2].HasNewline() {
		t.Fatalf("expected synthetic newline token at index 2")
	}
}

func TestTokenizeTrailingNewlineDropped(t *testing.T) {
	tokens := Tokenize("one two\n")
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	for _, tok := range tokens {
		if tok.HasNewline() {
			t.Fatalf("unexpected newline token for single-line input")
		}
	}
}

func TestTokenizeCRLF(t *testing.T) {
	tokens := Tokenize("one\r\ntwo\r\n")
	texts := make([]string, len(tokens))
	for i, tok := range tokens {
		texts[i] = tok.Text
	}
	want := []string{"one", "", "two"}
	if !reflect.DeepEqual(texts, want) {
		t.Fatalf("expected texts %v, got %v", want, texts)
	}
	if tokens[0].Text != "one" || len(tokens[0].Punctuation) != 0 {
		t.Fatalf("carriage return leaked into token: %q", tokens[0].Reconstructed())
	}
}

func TestSentenceBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []bool
	}{
		{
			name:  "first token always starts",
			input: "hello world",
			want:  []bool{true, false},
		},
		{
			name:  "terminator plus uppercase",
			input: "It ended. Then more",
			want:  []bool{true, false, true, false},
		},
		{
			name:  "terminator plus lowercase",
			input: "it ended. then more",
			want:  []bool{true, false, false, false},
		},
		{
			name:  "abbreviation suppresses boundary",
			input: "Dr. Smith went home.",
			want:  []bool{true, false, false, false},
		},
		{
			name:  "number without terminator",
			input: "Pi is 3.14 About right",
			want:  []bool{true, false, false, false, false},
		},
		{
			name:  "trailing dot after decimal ends sentence",
			input: "The value is 3.14. Next.",
			want:  []bool{true, false, false, false, true},
		},
		{
			name:  "question and exclamation terminate",
			input: "Really? Yes! Indeed",
			want:  []bool{true, true, true},
		},
	}
	for _, tc := range tests {
		tokens := Tokenize(tc.input)
		got := make([]bool, 0, len(tokens))
		for _, tok := range tokens {
			if tok.Text == "" {
				continue
			}
			got = append(got, tok.IsSentenceStart)
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestSentenceBoundaryAfterNewline(t *testing.T) {
	tokens := Tokenize("first line\nnext line")
	var afterNewline *Token
	for i := range tokens {
		if i > 0 && tokens[i-1].HasNewline() && tokens[i].Text != "" {
			afterNewline = &tokens[i]
			break
		}
	}
	if afterNewline == nil {
		t.Fatalf("no word token found after newline token")
	}
	if !afterNewline.IsSentenceStart {
		t.Fatalf("expected word after newline to start a sentence")
	}
}

func TestIsDecimalNumber(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"3.14", true},
		{"0.5", true},
		{"3.14.", false},
		{"3.", false},
		{".5", false},
		{"3", false},
		{"a.b", false},
	}
	for _, tc := range tests {
		if got := isDecimalNumber(tc.word); got != tc.want {
			t.Fatalf("isDecimalNumber(%q) = %v, expected %v", tc.word, got, tc.want)
		}
	}
}
