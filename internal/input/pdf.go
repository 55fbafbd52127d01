package input

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

func loadPDF(path string) (Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			// Best-effort close of the source file.
			_ = cerr
		}
	}()

	reader, err := r.GetPlainText()
	if err != nil {
		return Document{}, fmt.Errorf("failed to extract pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return Document{}, fmt.Errorf("failed to read pdf text: %w", err)
	}
	return validate(Document{Text: buf.String(), Source: path})
}
