// Package extract provides best-effort plain-text extraction from resume
// files. Callers get whatever text the file yields; an empty result is valid
// (e.g. a scanned-image PDF) and downstream heuristics must cope with it.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// UnsupportedFormatError is returned when a resume file has an extension the
// extractor does not handle. It is raised before any parsing attempt.
type UnsupportedFormatError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file type %q for %s: please provide a PDF, DOCX, or TXT resume", e.Ext, e.Path)
}

// ExtractionError represents a failure reading a supported file.
type ExtractionError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error for %s: %s", e.Path, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// FromFile classifies the file by extension and extracts its plain text.
// Supported extensions are .pdf, .docx, and .txt; anything else fails fast
// with an UnsupportedFormatError.
func FromFile(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf", ".docx", ".txt":
	default:
		return "", &UnsupportedFormatError{Path: path, Ext: ext}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Message: "failed to read file", Cause: err}
	}

	return FromBytes(path, data)
}

// FromBytes extracts plain text from in-memory file content, classified by
// the extension of name. Used by the HTTP API for uploaded files.
func FromBytes(name string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".pdf":
		text, err := extractPDFText(data)
		if err != nil {
			return "", &ExtractionError{Path: name, Message: "failed to extract PDF text", Cause: err}
		}
		return text, nil
	case ".docx":
		text, err := extractDocxText(data)
		if err != nil {
			return "", &ExtractionError{Path: name, Message: "failed to extract DOCX text", Cause: err}
		}
		return text, nil
	case ".txt":
		return string(data), nil
	default:
		return "", &UnsupportedFormatError{Path: name, Ext: ext}
	}
}
