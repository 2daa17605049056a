package ingestion

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// IngestError represents a failure to load job posting content.
type IngestError struct {
	Source  string
	Message string
	Cause   error
}

func (e *IngestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ingestion failed for %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("ingestion failed for %s: %s", e.Source, e.Message)
}

func (e *IngestError) Unwrap() error {
	return e.Cause
}

// FromFile reads a job posting from a local file and returns cleaned
// plain text. Supported formats are .txt, .md, .pdf, and .docx.
func FromFile(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var (
		text string
		err  error
	)
	switch ext {
	case ".txt", ".md":
		text, err = readTextFile(path)
	case ".pdf":
		text, err = readPDFFile(path)
	case ".docx":
		text, err = readDocxFile(path)
	default:
		return "", &IngestError{Source: path, Message: fmt.Sprintf("unsupported file format %q", ext)}
	}
	if err != nil {
		return "", err
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", &IngestError{Source: path, Message: "file contains no text"}
	}
	return cleaned, nil
}

func readTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &IngestError{Source: path, Message: "failed to read file", Cause: err}
	}
	return string(data), nil
}

func readPDFFile(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &IngestError{Source: path, Message: "failed to open PDF", Cause: err}
	}
	defer func() { _ = f.Close() }()

	textReader, err := reader.GetPlainText()
	if err != nil {
		return "", &IngestError{Source: path, Message: "failed to extract PDF text", Cause: err}
	}

	text, err := io.ReadAll(textReader)
	if err != nil {
		return "", &IngestError{Source: path, Message: "failed to read PDF text", Cause: err}
	}
	return string(text), nil
}

var xmlTagRe = regexp.MustCompile(`<[^>]+>`)

func readDocxFile(path string) (string, error) {
	reader, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", &IngestError{Source: path, Message: "failed to open DOCX", Cause: err}
	}
	defer func() { _ = reader.Close() }()

	content := reader.Editable().GetContent()
	return stripDocxMarkup(content), nil
}

// stripDocxMarkup converts document XML into plain text. Paragraph ends
// become newlines so the section structure of the posting survives.
func stripDocxMarkup(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = xmlTagRe.ReplaceAllString(content, "")
	content = strings.ReplaceAll(content, "&amp;", "&")
	content = strings.ReplaceAll(content, "&lt;", "<")
	content = strings.ReplaceAll(content, "&gt;", ">")
	content = strings.ReplaceAll(content, "&quot;", `"`)
	content = strings.ReplaceAll(content, "&apos;", "'")
	return content
}
