package input

import (
	"fmt"
	"os"
	"unicode/utf8"
)

func loadText(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read file: %w", err)
	}
	if !utf8.Valid(data) {
		return Document{}, fmt.Errorf("file is not valid UTF-8: %s", path)
	}
	return validate(Document{Text: string(data), Source: path})
}
