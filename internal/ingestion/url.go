package ingestion

import (
	"context"

	"github.com/jonathan/ats-resume-builder/internal/fetch"
)

// FromURL fetches a job posting page, extracts its main text, and
// returns cleaned plain text. When useBrowser is true and the HTTP
// fetch yields too little content, the page is re-rendered in a
// headless browser before extraction. Browser failures fall back to the
// HTTP content rather than aborting.
func FromURL(ctx context.Context, urlStr string, useBrowser bool) (string, error) {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", &IngestError{Source: urlStr, Message: "failed to fetch URL", Cause: err}
	}

	textContent, err := fetch.ExtractMainText(result.HTML, fetch.JobPostingSelectors())
	if err != nil {
		return "", &IngestError{Source: urlStr, Message: "failed to extract page text", Cause: err}
	}

	if useBrowser && fetch.ShouldUseBrowser(textContent) {
		browserHTML, browserErr := fetch.WithBrowser(ctx, urlStr, fetch.BrowserTimeout)
		if browserErr == nil {
			if rendered, extractErr := fetch.ExtractMainText(browserHTML, fetch.JobPostingSelectors()); extractErr == nil {
				textContent = rendered
			}
		}
	}

	cleaned := CleanText(textContent)
	if cleaned == "" {
		return "", &IngestError{Source: urlStr, Message: "page contains no usable text"}
	}
	return cleaned, nil
}
