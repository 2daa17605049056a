package docx

import (
	"archive/zip"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-resume-builder/internal/formatting"
)

func sampleDocument() formatting.FormattedDocument {
	return formatting.Format("WORK EXPERIENCE:\nAcme Corp | Jan 2020 - Dec 2022\nSenior Engineer\nBuilt systems\nSKILLS:\nGo & Rust")
}

func writeAndReadPart(t *testing.T, doc formatting.FormattedDocument, part string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "resume.docx")
	require.NoError(t, Write(doc, path))

	reader, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer func() { _ = reader.Close() }()

	for _, f := range reader.File {
		if f.Name != part {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer func() { _ = rc.Close() }()
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(content)
	}

	t.Fatalf("part %s not found in archive", part)
	return ""
}

func TestWrite_PackageParts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.docx")
	require.NoError(t, Write(sampleDocument(), path))

	reader, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer func() { _ = reader.Close() }()

	names := make([]string, 0, len(reader.File))
	for _, f := range reader.File {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "[Content_Types].xml")
	assert.Contains(t, names, "_rels/.rels")
	assert.Contains(t, names, "word/document.xml")
	assert.Contains(t, names, "word/styles.xml")
	assert.Contains(t, names, "word/_rels/document.xml.rels")
}

func TestWrite_DocumentContent(t *testing.T) {
	content := writeAndReadPart(t, sampleDocument(), "word/document.xml")

	assert.Contains(t, content, `<w:pStyle w:val="ATSHeading"/>`)
	assert.Contains(t, content, `<w:pStyle w:val="ATSBody"/>`)
	assert.Contains(t, content, `<w:t xml:space="preserve">WORK EXPERIENCE</w:t>`)
	assert.Contains(t, content, `<w:t xml:space="preserve">Acme Corp</w:t>`)
	// Dates follow the bold company run as plain text.
	assert.Contains(t, content, `<w:t xml:space="preserve"> | Jan 2020 - Dec 2022</w:t>`)
}

func TestWrite_BoldAndItalicRuns(t *testing.T) {
	content := writeAndReadPart(t, sampleDocument(), "word/document.xml")
	assert.Contains(t, content, "<w:b/>")
	assert.Contains(t, content, "<w:i/>")
}

func TestWrite_BulletHangingIndent(t *testing.T) {
	content := writeAndReadPart(t, sampleDocument(), "word/document.xml")
	assert.Contains(t, content, `<w:ind w:left="360" w:hanging="360"/>`)
	assert.Contains(t, content, formatting.BulletGlyph+"Built systems")
}

func TestWrite_PageMargins(t *testing.T) {
	content := writeAndReadPart(t, sampleDocument(), "word/document.xml")
	assert.Contains(t, content, `<w:pgMar w:top="1440" w:right="1440" w:bottom="1440" w:left="1440"/>`)
}

func TestWrite_StylesPart(t *testing.T) {
	content := writeAndReadPart(t, sampleDocument(), "word/styles.xml")
	assert.Contains(t, content, `w:styleId="ATSHeading"`)
	assert.Contains(t, content, `w:styleId="ATSBody"`)
	assert.Contains(t, content, `w:ascii="Arial"`)
	// 14pt heading and 11pt body, in half-points.
	assert.Contains(t, content, `<w:sz w:val="28"/>`)
	assert.Contains(t, content, `<w:sz w:val="22"/>`)
}

func TestWrite_EscapesXMLCharacters(t *testing.T) {
	content := writeAndReadPart(t, sampleDocument(), "word/document.xml")
	assert.Contains(t, content, "Go &amp; Rust")
	assert.NotContains(t, content, "Go & Rust")
}

func TestWrite_EmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.docx")
	require.NoError(t, Write(formatting.FormattedDocument{}, path))

	reader, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer func() { _ = reader.Close() }()
	assert.NotEmpty(t, reader.File)
}

func TestEscapeXML(t *testing.T) {
	assert.Equal(t, "a &lt;b&gt; &amp; &quot;c&quot; &apos;d&apos;", escapeXML(`a <b> & "c" 'd'`))
	assert.Equal(t, "plain", escapeXML("plain"))
}
