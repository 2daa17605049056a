// Package docx renders a formatted document model into an ATS-friendly
// Word (.docx) file. A docx package is a zip archive of OOXML parts; the
// parts are written directly so the output carries exactly the named
// styles, margins, and indents ATS parsers expect.
package docx

const (
	// pageMarginTwips is the 1-inch page margin on all sides.
	pageMarginTwips = 1440
	// bulletIndentTwips is the hanging-indent width for bullet paragraphs
	// (0.25 inch): positive left indent plus an equal negative first-line
	// indent so wrapped text aligns under the text start.
	bulletIndentTwips = 360

	// headingStyleID and bodyStyleID are the named paragraph styles.
	headingStyleID = "ATSHeading"
	bodyStyleID    = "ATSBody"
)

// contentTypesXML declares the content types of the package parts.
const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
  <Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>
</Types>
`

// rootRelsXML wires the package root to the main document part.
const rootRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>
`

// documentRelsXML wires the document part to its styles part.
const documentRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>
</Relationships>
`

// stylesXML defines the two ATS paragraph styles: Arial 14pt bold headings
// and Arial 11pt body text. Font sizes are in half-points.
const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:docDefaults>
    <w:rPrDefault>
      <w:rPr>
        <w:rFonts w:ascii="Arial" w:hAnsi="Arial" w:cs="Arial"/>
        <w:sz w:val="22"/>
      </w:rPr>
    </w:rPrDefault>
  </w:docDefaults>
  <w:style w:type="paragraph" w:styleId="ATSHeading">
    <w:name w:val="ATS Heading"/>
    <w:rPr>
      <w:rFonts w:ascii="Arial" w:hAnsi="Arial" w:cs="Arial"/>
      <w:b/>
      <w:sz w:val="28"/>
    </w:rPr>
  </w:style>
  <w:style w:type="paragraph" w:styleId="ATSBody">
    <w:name w:val="ATS Body"/>
    <w:rPr>
      <w:rFonts w:ascii="Arial" w:hAnsi="Arial" w:cs="Arial"/>
      <w:sz w:val="22"/>
    </w:rPr>
  </w:style>
</w:styles>
`
