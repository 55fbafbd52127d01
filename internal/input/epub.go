package input

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// loadEPUB extracts text from every XHTML document in the archive, in
// archive order. EPUB is a zip of XHTML; the XML tokenizer below strips
// markup and keeps character data, which is enough for linear reading.
func loadEPUB(path string) (Document, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to open epub: %w", err)
	}
	defer func() {
		if cerr := zr.Close(); cerr != nil {
			// Best-effort close of the archive.
			_ = cerr
		}
	}()

	var b strings.Builder
	for _, file := range zr.File {
		if !isContentDocument(file.Name) {
			continue
		}
		text, err := extractXHTMLText(file)
		if err != nil {
			return Document{}, fmt.Errorf("failed to extract %s: %w", file.Name, err)
		}
		if text != "" {
			b.WriteString(text)
			b.WriteString("\n")
		}
	}
	return validate(Document{Text: b.String(), Source: path})
}

func isContentDocument(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".xhtml") ||
		strings.HasSuffix(lower, ".html") ||
		strings.HasSuffix(lower, ".htm")
}

func extractXHTMLText(file *zip.File) (string, error) {
	rc, err := file.Open()
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil {
			// Best-effort close of the archive entry.
			_ = cerr
		}
	}()

	dec := xml.NewDecoder(rc)
	dec.Strict = false
	dec.AutoClose = xml.HTMLAutoClose
	dec.Entity = xml.HTMLEntity

	var b strings.Builder
	skipDepth := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			name := strings.ToLower(t.Name.Local)
			if name == "script" || name == "style" {
				skipDepth++
			}
			if isBlockElement(name) && b.Len() > 0 {
				b.WriteString("\n")
			}
		case xml.EndElement:
			name := strings.ToLower(t.Name.Local)
			if (name == "script" || name == "style") && skipDepth > 0 {
				skipDepth--
			}
		case xml.CharData:
			if skipDepth == 0 {
				b.Write([]byte(t))
			}
		}
	}
	return strings.TrimSpace(b.String()), nil
}

func isBlockElement(name string) bool {
	switch name {
	case "p", "div", "br", "h1", "h2", "h3", "h4", "h5", "h6", "li", "tr":
		return true
	}
	return false
}
