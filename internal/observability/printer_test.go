package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/ats-resume-builder/internal/types"
	"github.com/jonathan/ats-resume-builder/internal/validation"
)

func TestPrintJobRequirements(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobRequirements(&types.JobRequirements{
		RequiredSkills:      []string{"Go", "PostgreSQL", "Kafka", "Redis", "gRPC", "Kubernetes"},
		RequiredExperience:  []string{"5+ years backend"},
		KeyResponsibilities: []string{"Design services"},
		Keywords:            []string{"golang", "microservices"},
	})
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED JOB REQUIREMENTS")
	assert.Contains(t, output, "Go")
	assert.Contains(t, output, "5+ years backend")
	assert.Contains(t, output, "... and 1 more")
	assert.Contains(t, output, "golang, microservices")
}

func TestPrintJobRequirements_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintJobRequirements(nil)
	assert.Empty(t, buf.String())
}

func TestPrintWarnings(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintWarnings([]validation.Warning{
		{Check: "pages", Message: "resume is 3 pages, expected at most 2"},
	})
	assert.Contains(t, buf.String(), "warning: [pages] resume is 3 pages")

	buf.Reset()
	p.PrintWarnings(nil)
	assert.Empty(t, buf.String())
}

func TestPrintStep(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintStep(2, 7, "Analyzing job posting")
	assert.Equal(t, "[2/7] Analyzing job posting\n", buf.String())
}

func TestPrintArtifacts(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintArtifacts([]string{"out/resume.txt", "out/resume.docx"})
	output := buf.String()
	assert.Contains(t, output, "Generated files:")
	assert.Contains(t, output, "out/resume.docx")
}
