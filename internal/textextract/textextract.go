// Package textextract reads candidate documents from disk and returns their
// plain-text content. PDF and DOCX payloads are decoded; txt and md files
// pass through unchanged.
package textextract

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// UnsupportedFormatError indicates a file extension the extractor cannot
// handle.
type UnsupportedFormatError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q for %s (expected .pdf, .docx, .txt, or .md)", e.Ext, e.Path)
}

// ExtractError wraps a decoding failure for a specific file.
type ExtractError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ExtractError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to extract text from %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to extract text from %s: %s", e.Path, e.Message)
}

func (e *ExtractError) Unwrap() error {
	return e.Cause
}

// FromFile extracts plain text from the document at path. The format is
// chosen by file extension.
func FromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractError{Path: path, Message: "read file", Cause: err}
	}
	return FromBytes(data, path)
}

// FromBytes extracts plain text from an in-memory document. The name is used
// only to pick the decoder by extension and for error messages.
func FromBytes(data []byte, name string) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".pdf":
		text, err := extractPDF(data)
		if err != nil {
			return "", &ExtractError{Path: name, Message: "decode pdf", Cause: err}
		}
		return text, nil
	case ".docx":
		text, err := extractDOCX(data)
		if err != nil {
			return "", &ExtractError{Path: name, Message: "decode docx", Cause: err}
		}
		return text, nil
	case ".txt", ".md":
		return string(data), nil
	default:
		return "", &UnsupportedFormatError{Path: name, Ext: ext}
	}
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	defer doc.Close()

	return stripDocXML(doc.Editable().GetContent()), nil
}

// stripDocXML flattens WordprocessingML to plain text, inserting newlines at
// paragraph and line-break boundaries.
func stripDocXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
