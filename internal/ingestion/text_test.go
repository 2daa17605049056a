package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	input := "line one\r\nline two\rline three"
	assert.Equal(t, "line one\nline two\nline three", CleanText(input))
}

func TestCleanText_CollapsesSpacesAndBlankLines(t *testing.T) {
	input := "Senior    Go   Engineer\n\n\n\n\nRemote position"
	assert.Equal(t, "Senior Go Engineer\n\nRemote position", CleanText(input))
}

func TestCleanText_PreservesBullets(t *testing.T) {
	input := "Requirements:\n- 5+ years Go\n  - Kubernetes\n• Distributed systems"
	expected := "Requirements:\n- 5+ years Go\n  - Kubernetes\n• Distributed systems"
	assert.Equal(t, expected, CleanText(input))
}

func TestCleanText_TrimsOuterWhitespace(t *testing.T) {
	assert.Equal(t, "content", CleanText("\n\n   content   \n\n"))
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\t\n  "))
}
