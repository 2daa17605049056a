package docx

import (
	"archive/zip"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/ats-resume-builder/internal/formatting"
)

// WriteError represents a failure writing the docx package.
type WriteError struct {
	Path    string
	Message string
	Cause   error
}

func (e *WriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("docx write error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("docx write error for %s: %s", e.Path, e.Message)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}

// Write renders the document model to a .docx file at path. Rendering is
// deterministic: identical documents produce identical part contents.
func Write(doc formatting.FormattedDocument, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Message: "failed to create output file", Cause: err}
	}

	zw := zip.NewWriter(out)
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", rootRelsXML},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", stylesXML},
		{"word/document.xml", buildDocumentXML(doc)},
	}

	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			_ = zw.Close()
			_ = out.Close()
			return &WriteError{Path: path, Message: fmt.Sprintf("failed to create part %s", part.name), Cause: err}
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			_ = zw.Close()
			_ = out.Close()
			return &WriteError{Path: path, Message: fmt.Sprintf("failed to write part %s", part.name), Cause: err}
		}
	}

	if err := zw.Close(); err != nil {
		_ = out.Close()
		return &WriteError{Path: path, Message: "failed to finalize archive", Cause: err}
	}
	if err := out.Close(); err != nil {
		return &WriteError{Path: path, Message: "failed to close output file", Cause: err}
	}

	return nil
}

// buildDocumentXML serializes the block sequence into word/document.xml.
func buildDocumentXML(doc formatting.FormattedDocument) string {
	var sb strings.Builder

	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	sb.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` + "\n")
	sb.WriteString("  <w:body>\n")

	for _, block := range doc.Blocks {
		writeParagraph(&sb, block)
	}

	// Section properties: 1-inch margins on all sides.
	fmt.Fprintf(&sb, "    <w:sectPr>\n      <w:pgMar w:top=\"%d\" w:right=\"%d\" w:bottom=\"%d\" w:left=\"%d\"/>\n    </w:sectPr>\n",
		pageMarginTwips, pageMarginTwips, pageMarginTwips, pageMarginTwips)

	sb.WriteString("  </w:body>\n")
	sb.WriteString("</w:document>\n")

	return sb.String()
}

// writeParagraph serializes one block as a w:p element.
func writeParagraph(sb *strings.Builder, block formatting.Block) {
	styleID := bodyStyleID
	if block.Style == formatting.StyleHeading {
		styleID = headingStyleID
	}

	sb.WriteString("    <w:p>\n      <w:pPr>\n")
	fmt.Fprintf(sb, "        <w:pStyle w:val=%q/>\n", styleID)
	if block.Bullet {
		fmt.Fprintf(sb, "        <w:ind w:left=\"%d\" w:hanging=\"%d\"/>\n", bulletIndentTwips, bulletIndentTwips)
	}
	sb.WriteString("      </w:pPr>\n")

	for _, run := range block.Runs {
		sb.WriteString("      <w:r>\n")
		if run.Bold || run.Italic {
			sb.WriteString("        <w:rPr>\n")
			if run.Bold {
				sb.WriteString("          <w:b/>\n")
			}
			if run.Italic {
				sb.WriteString("          <w:i/>\n")
			}
			sb.WriteString("        </w:rPr>\n")
		}
		fmt.Fprintf(sb, "        <w:t xml:space=\"preserve\">%s</w:t>\n", escapeXML(run.Text))
		sb.WriteString("      </w:r>\n")
	}

	sb.WriteString("    </w:p>\n")
}

// xmlReplacer escapes the characters with special meaning in XML content.
var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// escapeXML escapes text for inclusion in an XML element.
func escapeXML(text string) string {
	return xmlReplacer.Replace(text)
}
