package formatting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSections_EmptyInput(t *testing.T) {
	assert.Empty(t, SplitSections(""))
	assert.Empty(t, SplitSections("   \n\n  "))
}

func TestSplitSections_NoHeadings(t *testing.T) {
	sections := SplitSections("Just a name\nAn address line")
	require.Len(t, sections, 1)
	assert.Equal(t, "", sections[0].Title)
	assert.Equal(t, []string{"Just a name", "An address line"}, sections[0].BodyLines)
}

func TestSplitSections_StandardHeadingsPreserveOrder(t *testing.T) {
	input := "SUMMARY:\nExperienced engineer\nWORK EXPERIENCE:\nAcme Corp | Jan 2020 - Dec 2022\nEDUCATION:\nState University\nSKILLS:\nGo, SQL"
	sections := SplitSections(input)
	require.Len(t, sections, 4)
	assert.Equal(t, "SUMMARY", sections[0].Title)
	assert.Equal(t, "WORK EXPERIENCE", sections[1].Title)
	assert.Equal(t, "EDUCATION", sections[2].Title)
	assert.Equal(t, "SKILLS", sections[3].Title)
}

func TestSplitSections_PreambleBeforeFirstHeading(t *testing.T) {
	input := "Jane Doe\njane@example.com\nSKILLS:\nGo"
	sections := SplitSections(input)
	require.Len(t, sections, 2)
	assert.Equal(t, "", sections[0].Title)
	assert.Equal(t, []string{"Jane Doe", "jane@example.com"}, sections[0].BodyLines)
	assert.Equal(t, "SKILLS", sections[1].Title)
}

func TestSplitSections_HeadingWithTrailingContent(t *testing.T) {
	sections := SplitSections("SKILLS: Go, Python\nKubernetes")
	require.Len(t, sections, 1)
	assert.Equal(t, "SKILLS", sections[0].Title)
	require.Len(t, sections[0].BodyLines, 2)
	assert.Equal(t, "Go, Python", strings.TrimSpace(sections[0].BodyLines[0]))
	assert.Equal(t, "Kubernetes", sections[0].BodyLines[1])
}

func TestSplitSections_MixedCaseColonLineIsNotHeading(t *testing.T) {
	// "Skills:" is not ALL-CAPS, so it stays in the preamble body.
	sections := SplitSections("Skills: Go\nmore text")
	require.Len(t, sections, 1)
	assert.Equal(t, "", sections[0].Title)
}

func TestSplitSections_EmptyChunksSkipped(t *testing.T) {
	// Blank-only preamble is dropped; back-to-back headings both survive.
	input := "\n\nEDUCATION:\nSKILLS:\nGo"
	sections := SplitSections(input)
	require.Len(t, sections, 2)
	assert.Equal(t, "EDUCATION", sections[0].Title)
	assert.Equal(t, "SKILLS", sections[1].Title)
}

func TestSplitSections_NoContentDroppedOutsideHeadings(t *testing.T) {
	input := "Jane Doe\nSUMMARY:\nBuilds things\n\nWORK EXPERIENCE:\nAcme | Jan 2020\nShipped it"
	sections := SplitSections(input)

	var got strings.Builder
	for _, s := range sections {
		for _, line := range s.BodyLines {
			got.WriteString(strings.TrimSpace(line))
		}
	}

	// Every non-heading line must reappear in exactly one section body.
	for _, want := range []string{"JaneDoe", "Buildsthings", "Acme|Jan2020", "Shippedit"} {
		assert.Contains(t, strings.ReplaceAll(got.String(), " ", ""), want)
	}
}

func TestNormalizeTitle_ExperienceVariants(t *testing.T) {
	assert.Equal(t, "WORK EXPERIENCE", NormalizeTitle("Professional Experience"))
	assert.Equal(t, "WORK EXPERIENCE", NormalizeTitle("RELEVANT EXPERIENCE"))
	assert.Equal(t, "WORK EXPERIENCE", NormalizeTitle("work experience"))
}

func TestNormalizeTitle_Education(t *testing.T) {
	assert.Equal(t, "EDUCATION", NormalizeTitle("Education & Certifications"))
}

func TestNormalizeTitle_Skills(t *testing.T) {
	assert.Equal(t, "SKILLS", NormalizeTitle("Technical Skills"))
}

func TestNormalizeTitle_OtherUppercasedAsIs(t *testing.T) {
	assert.Equal(t, "SUMMARY", NormalizeTitle("  Summary "))
	assert.Equal(t, "CERTIFICATIONS", NormalizeTitle("Certifications"))
}

func TestNormalizeTitle_Idempotent(t *testing.T) {
	for _, title := range []string{"WORK EXPERIENCE", "EDUCATION", "SKILLS", "SUMMARY"} {
		assert.Equal(t, title, NormalizeTitle(title))
	}
}
