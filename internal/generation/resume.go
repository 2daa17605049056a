// Package generation drafts tailored ATS-optimized resume text from a
// candidate profile and extracted job requirements.
package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/ats-resume-builder/internal/llm"
	"github.com/jonathan/ats-resume-builder/internal/prompts"
	"github.com/jonathan/ats-resume-builder/internal/types"
)

// GenerationError represents a failure to draft the resume text.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("resume generation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("resume generation failed: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// GenerateResume drafts the tailored resume text. The prompt pins the
// formatting conventions the document formatter relies on (standard
// section headings, "Company | Dates" entry headers, bulleted
// achievements); the output remains free-form text with no structural
// guarantee beyond best effort.
func GenerateResume(ctx context.Context, client llm.Client, profile *types.CandidateProfile, requirements *types.JobRequirements) (string, error) {
	prompt, err := buildGenerationPrompt(profile, requirements)
	if err != nil {
		return "", err
	}

	resumeText, err := client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return "", &GenerationError{Message: "generation service call failed", Cause: err}
	}

	resumeText = strings.TrimSpace(resumeText)
	if resumeText == "" {
		return "", &GenerationError{Message: "generation service returned empty text"}
	}

	return resumeText, nil
}

// buildGenerationPrompt embeds the profile and requirements as
// pretty-printed JSON in the drafting prompt.
func buildGenerationPrompt(profile *types.CandidateProfile, requirements *types.JobRequirements) (string, error) {
	profileJSON, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return "", &GenerationError{Message: "failed to marshal candidate profile", Cause: err}
	}

	requirementsJSON, err := json.MarshalIndent(requirements, "", "  ")
	if err != nil {
		return "", &GenerationError{Message: "failed to marshal job requirements", Cause: err}
	}

	template := prompts.MustGet("generation.json", "tailored-resume")
	return prompts.Format(template, map[string]string{
		"Profile":      string(profileJSON),
		"Requirements": string(requirementsJSON),
	}), nil
}
