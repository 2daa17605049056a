package formatting

import (
	"regexp"
	"strings"
)

// headingLineRe matches a line that begins a new section: an ALL-CAPS
// title (uppercase letters and spaces) followed by a colon. Content after
// the colon is allowed and becomes the section's first body line.
var headingLineRe = regexp.MustCompile(`^[A-Z][A-Z\s]+:`)

// SplitSections splits resume text into ordered sections on heading-line
// boundaries. Text preceding the first heading becomes a headerless
// preamble section with an empty title. Sections with neither a title nor
// any non-blank body line are skipped; no other content is dropped.
func SplitSections(text string) []Section {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")

	var sections []Section
	current := Section{} // headerless preamble until the first heading

	flush := func() {
		if current.Title != "" || anyNonBlank(current.BodyLines) {
			sections = append(sections, current)
		}
	}

	for _, line := range lines {
		if headingLineRe.MatchString(line) {
			flush()
			title, rest, _ := strings.Cut(line, ":")
			current = Section{Title: NormalizeTitle(title)}
			if strings.TrimSpace(rest) != "" {
				current.BodyLines = append(current.BodyLines, rest)
			}
			continue
		}
		current.BodyLines = append(current.BodyLines, line)
	}
	flush()

	return sections
}

// NormalizeTitle upper-cases and trims a section title, then maps it onto
// the standard ATS vocabulary: any title containing EXPERIENCE becomes
// WORK EXPERIENCE, then EDUCATION and SKILLS likewise. Other titles pass
// through upper-cased. The mapping is idempotent.
func NormalizeTitle(title string) string {
	title = strings.ToUpper(strings.TrimSpace(title))
	switch {
	case strings.Contains(title, "EXPERIENCE"):
		return "WORK EXPERIENCE"
	case strings.Contains(title, "EDUCATION"):
		return "EDUCATION"
	case strings.Contains(title, "SKILLS"):
		return "SKILLS"
	default:
		return title
	}
}

func anyNonBlank(lines []string) bool {
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			return true
		}
	}
	return false
}
