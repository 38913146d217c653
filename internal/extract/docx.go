package extract

import (
	"bytes"
	"fmt"

	"github.com/nguyenthenguyen/docx"
)

// extractDocxText reads the document body of a DOCX file.
func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return doc.Editable().GetContent(), nil
}
