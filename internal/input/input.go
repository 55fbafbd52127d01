// Package input acquires plain text for reading: files (text, PDF,
// EPUB) and the system clipboard. Loaders hand raw Unicode text to the
// core; tokenization happens downstream.
package input

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Document is extracted plain text plus where it came from.
type Document struct {
	Text   string
	Source string
}

// ErrEmptyDocument reports a source that yielded no readable text.
var ErrEmptyDocument = errors.New("document contains no readable text")

// Load extracts text from a file, dispatching on extension. Anything
// that is not PDF or EPUB is read as plain text.
func Load(path string) (Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return loadPDF(path)
	case ".epub":
		return loadEPUB(path)
	default:
		return loadText(path)
	}
}

func validate(doc Document) (Document, error) {
	if strings.TrimSpace(doc.Text) == "" {
		return Document{}, fmt.Errorf("%w: %s", ErrEmptyDocument, doc.Source)
	}
	return doc, nil
}
