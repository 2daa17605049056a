// Package formatting converts free-form resume text produced by the LLM into
// a structured document model with consistent section headings, job-entry
// grouping, and hanging-indent bullets. The parsing is deliberately lenient:
// the generation service's output is not contractually structured, so every
// input string yields a document and malformed lines degrade gracefully.
package formatting

// BlockStyle identifies the named paragraph style a block is rendered with.
type BlockStyle string

const (
	// StyleHeading is the section heading style (large, bold).
	StyleHeading BlockStyle = "heading"
	// StyleBody is the body text style.
	StyleBody BlockStyle = "body"
)

// Run is a span of text with optional bold/italic emphasis.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
}

// Block is one styled paragraph of the output document. A Block with no
// runs renders as a blank separator paragraph. Bullet blocks are rendered
// with a hanging indent so wrapped text aligns under the text start rather
// than under the bullet glyph.
type Block struct {
	Style  BlockStyle
	Runs   []Run
	Bullet bool
}

// FormattedDocument is the ordered sequence of styled blocks produced from
// one resume text.
type FormattedDocument struct {
	Blocks []Block
}

// Section is one titled chunk of resume content. Title is already
// normalized (upper-cased, standard-vocabulary mapped); a Section with an
// empty Title is the headerless preamble (contact lines before the first
// recognized heading). BodyLines preserves input order and blank lines.
type Section struct {
	Title     string
	BodyLines []string
}

// JobEntry is one employer/role record within a WORK EXPERIENCE section.
type JobEntry struct {
	Company   string
	Dates     string
	TitleLine string
	Bullets   []string
}
