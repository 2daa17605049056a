package formatting

import "strings"

// BulletGlyph prefixes every bullet line in the rendered document.
const BulletGlyph = "• "

// Format transforms raw resume text into an ordered document model. It is
// deterministic, total over any input string, and never returns an error:
// malformed input degrades to fewer blocks rather than failing. An empty
// input yields an empty document.
func Format(text string) FormattedDocument {
	var doc FormattedDocument
	for _, section := range SplitSections(text) {
		doc.Blocks = append(doc.Blocks, formatSection(section)...)
	}
	return doc
}

// formatSection renders one section into blocks: a heading block (omitted
// for the headerless preamble), the section body, and a trailing blank
// separator block.
func formatSection(section Section) []Block {
	var blocks []Block

	if section.Title != "" {
		blocks = append(blocks, Block{
			Style: StyleHeading,
			Runs:  []Run{{Text: section.Title}},
		})
	}

	if section.Title == "WORK EXPERIENCE" {
		for _, entry := range GroupJobEntries(section.BodyLines) {
			blocks = append(blocks, formatJobEntry(entry)...)
		}
	} else {
		for _, line := range section.BodyLines {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			blocks = append(blocks, Block{
				Style: StyleBody,
				Runs:  []Run{{Text: trimmed}},
			})
		}
	}

	// Blank paragraph between sections.
	blocks = append(blocks, Block{Style: StyleBody})

	return blocks
}

// formatJobEntry renders one job entry: a header line with the company in
// bold and the dates in plain text, an italic role-title line when
// present, and hanging-indent bullet blocks for the rest.
func formatJobEntry(entry JobEntry) []Block {
	var blocks []Block

	header := Block{
		Style: StyleBody,
		Runs:  []Run{{Text: entry.Company, Bold: true}},
	}
	if entry.Dates != "" {
		header.Runs = append(header.Runs, Run{Text: " | " + entry.Dates})
	}
	blocks = append(blocks, header)

	if entry.TitleLine != "" {
		blocks = append(blocks, Block{
			Style: StyleBody,
			Runs:  []Run{{Text: entry.TitleLine, Italic: true}},
		})
	}

	for _, bullet := range entry.Bullets {
		blocks = append(blocks, Block{
			Style:  StyleBody,
			Bullet: true,
			Runs:   []Run{{Text: BulletGlyph + bullet}},
		})
	}

	return blocks
}
