// Package validation runs advisory checks on generated resume artifacts.
// Findings are warnings; they never fail the pipeline.
package validation

import (
	"fmt"

	"github.com/jonathan/ats-resume-builder/internal/formatting"
	"github.com/jonathan/ats-resume-builder/internal/pdf"
)

// Warning is a single advisory finding.
type Warning struct {
	Check   string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("[%s] %s", w.Check, w.Message)
}

// standardHeadings are the section titles ATS parsers recognize most
// reliably.
var standardHeadings = []string{"SUMMARY", "SKILLS", "WORK EXPERIENCE", "EDUCATION"}

// CheckStandardHeadings warns about standard resume sections missing
// from the generated text.
func CheckStandardHeadings(text string) []Warning {
	present := make(map[string]bool)
	for _, section := range formatting.SplitSections(text) {
		if section.Title != "" {
			present[section.Title] = true
		}
	}

	var warnings []Warning
	for _, heading := range standardHeadings {
		if !present[heading] {
			warnings = append(warnings, Warning{
				Check:   "headings",
				Message: fmt.Sprintf("resume has no %s section", heading),
			})
		}
	}
	return warnings
}

// CheckPageCount warns when the PDF exceeds maxPages. A page-count
// failure is itself reported as a warning rather than an error.
func CheckPageCount(pdfPath string, maxPages int) []Warning {
	count, err := pdf.PageCount(pdfPath)
	if err != nil {
		return []Warning{{
			Check:   "pages",
			Message: fmt.Sprintf("could not count pages: %v", err),
		}}
	}

	if count > maxPages {
		return []Warning{{
			Check:   "pages",
			Message: fmt.Sprintf("resume is %d pages, expected at most %d", count, maxPages),
		}}
	}
	return nil
}
