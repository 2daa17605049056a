package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/ats-resume-builder/internal/llm"
)

// fakeClient answers extraction calls with canned requirements JSON and
// generation calls with canned resume text.
type fakeClient struct {
	resumeText       string
	requirementsJSON string
	err              error
}

func (f *fakeClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.resumeText, nil
}

func (f *fakeClient) GenerateJSON(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.requirementsJSON, nil
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error                  { return nil }

const testResumeText = `SUMMARY:
Backend engineer focused on Go services.

SKILLS:
Go, PostgreSQL

WORK EXPERIENCE:
Acme Corp | Jan 2020 - Dec 2022
Senior Engineer
Built distributed systems

EDUCATION:
State University | 2015`

func writeTestInputs(t *testing.T) (profilePath, jobPath string) {
	t.Helper()
	dir := t.TempDir()

	profilePath = filepath.Join(dir, "profile.json")
	require.NoError(t, os.WriteFile(profilePath, []byte(`{
		"name": "Jane Doe",
		"email": "jane@example.com",
		"skills": ["Go"],
		"experience": [{"company": "Acme Corp", "title": "Senior Engineer"}]
	}`), 0o644))

	jobPath = filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(jobPath, []byte("Senior Go Engineer\nBuild backend services in Go."), 0o644))
	return profilePath, jobPath
}

func TestRun_SkipPDFProducesTextAndDocx(t *testing.T) {
	profilePath, jobPath := writeTestInputs(t)
	outDir := t.TempDir()

	var events []ProgressEvent
	result, err := Run(context.Background(), RunOptions{
		ProfilePath: profilePath,
		JobPath:     jobPath,
		OutDir:      outDir,
		SkipPDF:     true,
		Client: &fakeClient{
			resumeText:       testResumeText,
			requirementsJSON: `{"required_skills": ["Go"], "keywords": ["golang"]}`,
		},
		OnProgress: func(e ProgressEvent) { events = append(events, e) },
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.FileExists(t, result.TextPath)
	assert.FileExists(t, result.DocxPath)
	assert.Empty(t, result.PDFPath)

	text, readErr := os.ReadFile(result.TextPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(text), "WORK EXPERIENCE:")

	// All four standard sections are present, so no heading warnings.
	assert.Empty(t, result.Warnings)

	var steps []string
	for _, e := range events {
		assert.Equal(t, result.RunID, e.RunID)
		steps = append(steps, e.Step)
	}
	assert.Contains(t, steps, StepIngest)
	assert.Contains(t, steps, StepProfile)
	assert.Contains(t, steps, StepAnalyze)
	assert.Contains(t, steps, StepGenerate)
	assert.Contains(t, steps, StepFormat)
}

func TestRun_WarnsOnMissingSections(t *testing.T) {
	profilePath, jobPath := writeTestInputs(t)

	result, err := Run(context.Background(), RunOptions{
		ProfilePath: profilePath,
		JobPath:     jobPath,
		OutDir:      t.TempDir(),
		SkipPDF:     true,
		Client: &fakeClient{
			resumeText:       "SKILLS:\nGo",
			requirementsJSON: `{}`,
		},
	})
	require.NoError(t, err)
	require.Len(t, result.Warnings, 3)
	for _, w := range result.Warnings {
		assert.Equal(t, "headings", w.Check)
	}
}

func TestRun_IngestionFailure(t *testing.T) {
	profilePath, _ := writeTestInputs(t)

	_, err := Run(context.Background(), RunOptions{
		ProfilePath: profilePath,
		JobPath:     filepath.Join(t.TempDir(), "missing.txt"),
		OutDir:      t.TempDir(),
		SkipPDF:     true,
		Client:      &fakeClient{resumeText: "x", requirementsJSON: "{}"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job ingestion failed")
}

func TestRun_ProfileLoadFailure(t *testing.T) {
	_, jobPath := writeTestInputs(t)

	_, err := Run(context.Background(), RunOptions{
		ProfilePath: filepath.Join(t.TempDir(), "missing.json"),
		JobPath:     jobPath,
		OutDir:      t.TempDir(),
		SkipPDF:     true,
		Client:      &fakeClient{resumeText: "x", requirementsJSON: "{}"},
	})
	require.Error(t, err)
}

func TestRun_GenerationFailure(t *testing.T) {
	profilePath, jobPath := writeTestInputs(t)

	_, err := Run(context.Background(), RunOptions{
		ProfilePath: profilePath,
		JobPath:     jobPath,
		OutDir:      t.TempDir(),
		SkipPDF:     true,
		Client:      &fakeClient{err: &llm.ServiceError{Message: "quota exceeded"}},
	})
	require.Error(t, err)
}
