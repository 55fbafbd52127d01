package input

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// LoadClipboard reads the system clipboard as a document.
func LoadClipboard() (Document, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return Document{}, fmt.Errorf("failed to read clipboard: %w", err)
	}
	return validate(Document{Text: text, Source: "clipboard"})
}
