// Package extract converts uploaded resume files into plain text for the
// scoring pipeline. PDF, DOCX and plain text are supported.
package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Text dispatches on the declared content type, falling back to the file
// extension when the client sent a generic type like octet-stream.
func Text(contentType, filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("uploaded file is empty")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case strings.Contains(contentType, "application/pdf") || ext == ".pdf":
		return pdfText(data)
	case strings.Contains(contentType, "wordprocessingml") || ext == ".docx":
		return docxText(data)
	case strings.Contains(contentType, "text/plain") || ext == ".txt":
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported file type: %s (use PDF, DOCX or TXT)", contentType)
	}
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
