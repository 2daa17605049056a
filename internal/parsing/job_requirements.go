// Package parsing extracts structured job requirements from job posting
// text using LLM extraction.
package parsing

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/ats-resume-builder/internal/llm"
	"github.com/jonathan/ats-resume-builder/internal/prompts"
	"github.com/jonathan/ats-resume-builder/internal/types"
)

// ExtractJobRequirements analyzes job posting text and returns the
// structured requirements the generation step consumes.
func ExtractJobRequirements(ctx context.Context, client llm.Client, jobText string) (*types.JobRequirements, error) {
	if strings.TrimSpace(jobText) == "" {
		return nil, &ExtractionError{Message: "job posting text is empty"}
	}

	prompt := buildExtractionPrompt(jobText)

	responseText, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &ExtractionError{Message: "failed to generate job analysis", Cause: err}
	}

	requirements, err := parseResponse(responseText)
	if err != nil {
		return nil, err
	}

	normalizeRequirements(requirements)
	return requirements, nil
}

// buildExtractionPrompt constructs the extraction prompt from the embedded
// template.
func buildExtractionPrompt(jobText string) string {
	template := prompts.MustGet("parsing.json", "extract-job-requirements")
	return prompts.Format(template, map[string]string{
		"JobPosting": jobText,
	})
}

// parseResponse parses the JSON response into JobRequirements.
func parseResponse(jsonText string) (*types.JobRequirements, error) {
	jsonText = llm.StripCodeFences(jsonText)

	var requirements types.JobRequirements
	if err := json.Unmarshal([]byte(jsonText), &requirements); err != nil {
		return nil, &ParseError{Message: "failed to parse job analysis JSON", Cause: err}
	}
	return &requirements, nil
}

// normalizeRequirements trims list entries, drops blanks, and lowercases
// and dedupes keywords.
func normalizeRequirements(r *types.JobRequirements) {
	r.RequiredSkills = trimList(r.RequiredSkills)
	r.RequiredExperience = trimList(r.RequiredExperience)
	r.KeyResponsibilities = trimList(r.KeyResponsibilities)

	normalized := make([]string, 0, len(r.Keywords))
	seen := make(map[string]bool)
	for _, keyword := range r.Keywords {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword != "" && !seen[keyword] {
			normalized = append(normalized, keyword)
			seen[keyword] = true
		}
	}
	r.Keywords = normalized
}

func trimList(items []string) []string {
	trimmed := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			trimmed = append(trimmed, item)
		}
	}
	return trimmed
}
