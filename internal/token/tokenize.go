package token

import "strings"

// Abbreviations that end in a terminator but do not end a sentence.
var abbreviations = map[string]struct{}{
	"Dr.":  {},
	"Mr.":  {},
	"Mrs.": {},
	"Ms.":  {},
	"St.":  {},
	"Jr.":  {},
	"e.g.": {},
	"i.e.": {},
	"vs.":  {},
	"etc.": {},
}

// Tokenize splits text line by line, then by whitespace, into tokens.
// Each line except the last is followed by a synthetic newline token.
// Empty input yields an empty slice.
func Tokenize(text string) []Token {
	var tokens []Token

	for _, line := range splitLines(text) {
		for _, word := range strings.Fields(line) {
			body, punct := extractPunctuation(word)
			tokens = append(tokens, Token{
				Text:            body,
				Punctuation:     punct,
				IsSentenceStart: detectSentenceBoundary(lastToken(tokens), word),
			})
		}

		tokens = append(tokens, Token{
			Punctuation:     []rune{'\n'},
			IsSentenceStart: detectSentenceBoundary(lastToken(tokens), ""),
		})
	}

	// The final line needs no newline token after it.
	if n := len(tokens); n > 0 {
		last := tokens[n-1]
		if last.Text == "" && len(last.Punctuation) == 1 && last.Punctuation[0] == '\n' {
			tokens = tokens[:n-1]
		}
	}

	return tokens
}

// splitLines behaves like splitting on '\n' but does not produce a
// phantom empty line for input that ends with a newline. CRLF line
// endings are normalized.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func lastToken(tokens []Token) *Token {
	if len(tokens) == 0 {
		return nil
	}
	return &tokens[len(tokens)-1]
}

// extractPunctuation peels the contiguous run of trailing marks off a
// word, preserving their original order.
func extractPunctuation(word string) (string, []rune) {
	runes := []rune(word)
	cut := len(runes)
	for cut > 0 {
		r := runes[cut-1]
		if !isSentenceTerminator(r) && !isComma(r) {
			break
		}
		cut--
	}
	if cut == len(runes) {
		return word, nil
	}
	punct := make([]rune, len(runes)-cut)
	copy(punct, runes[cut:])
	return string(runes[:cut]), punct
}

// detectSentenceBoundary reports whether the current word starts a new
// sentence given the previous token. The first token of a stream always
// does. A newline in the previous token forces a boundary; otherwise the
// previous token must end in a terminator, the current word must begin
// with an ASCII uppercase letter, and the previous word must be neither
// a known abbreviation nor a decimal number.
func detectSentenceBoundary(prev *Token, currentWord string) bool {
	if prev == nil {
		return true
	}
	if prev.HasNewline() {
		return true
	}
	if !prev.hasSentenceTerminator() {
		return false
	}

	full := prev.Reconstructed()
	if _, ok := abbreviations[full]; ok {
		return false
	}
	if isDecimalNumber(full) {
		return false
	}

	for _, r := range currentWord {
		return r >= 'A' && r <= 'Z'
	}
	return false
}

// isDecimalNumber matches digits, a single '.', then digits ("3.14").
func isDecimalNumber(word string) bool {
	parts := strings.Split(word, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false
	}
	return allASCIIDigits(parts[0]) && allASCIIDigits(parts[1])
}

func allASCIIDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
