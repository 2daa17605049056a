// Package pipeline provides the high-level orchestration for the ATS
// resume build process.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-resume-builder/internal/convert"
	"github.com/jonathan/ats-resume-builder/internal/docx"
	"github.com/jonathan/ats-resume-builder/internal/formatting"
	"github.com/jonathan/ats-resume-builder/internal/generation"
	"github.com/jonathan/ats-resume-builder/internal/ingestion"
	"github.com/jonathan/ats-resume-builder/internal/llm"
	"github.com/jonathan/ats-resume-builder/internal/observability"
	"github.com/jonathan/ats-resume-builder/internal/parsing"
	"github.com/jonathan/ats-resume-builder/internal/pdf"
	"github.com/jonathan/ats-resume-builder/internal/profile"
	"github.com/jonathan/ats-resume-builder/internal/types"
	"github.com/jonathan/ats-resume-builder/internal/validation"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Step names reported through ProgressEvent.
const (
	StepIngest   = "ingest"
	StepProfile  = "profile"
	StepAnalyze  = "analyze"
	StepGenerate = "generate"
	StepFormat   = "format"
	StepConvert  = "convert"
	StepFlatten  = "flatten"
	StepValidate = "validate"
)

// RunOptions holds configuration for running the pipeline.
type RunOptions struct {
	ProfilePath string
	JobPath     string
	JobURL      string
	OutDir      string
	APIKey      string
	UseBrowser  bool
	Verbose     bool
	MaxPages    int
	SkipPDF     bool

	// Client overrides the LLM client; when nil one is created from
	// APIKey.
	Client     llm.Client
	OnProgress ProgressCallback
}

// Result holds the artifacts produced by a pipeline run.
type Result struct {
	RunID    string
	TextPath string
	DocxPath string
	PDFPath  string
	Warnings []validation.Warning
}

const totalSteps = 7

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, runID, step, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			RunID:   runID,
		})
	}
}

// Run orchestrates the full build: ingest posting, analyze it alongside
// loading the profile, draft the resume text, format it into a DOCX,
// convert to PDF with LibreOffice, and flatten the result. Conversion
// and flattening degrade gracefully; the text and DOCX artifacts always
// survive an available-tooling failure.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	printer := observability.NewPrinter(os.Stdout)
	runID := uuid.New().String()

	if opts.OutDir == "" {
		opts.OutDir = "."
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", opts.OutDir, err)
	}

	client := opts.Client
	if client == nil {
		var err error
		client, err = llm.NewClient(ctx, llm.DefaultConfig(), opts.APIKey)
		if err != nil {
			return nil, err
		}
		defer func() { _ = client.Close() }()
	}

	// Step 1: Ingest job posting (from URL or file)
	var jobText string
	var err error
	if opts.JobURL != "" {
		printer.PrintStep(1, totalSteps, fmt.Sprintf("Ingesting job posting from %s", opts.JobURL))
		jobText, err = ingestion.FromURL(ctx, opts.JobURL, opts.UseBrowser)
	} else {
		printer.PrintStep(1, totalSteps, fmt.Sprintf("Ingesting job posting from %s", opts.JobPath))
		jobText, err = ingestion.FromFile(opts.JobPath)
	}
	if err != nil {
		return nil, fmt.Errorf("job ingestion failed: %w", err)
	}
	emitProgress(&opts, runID, StepIngest, fmt.Sprintf("ingested %d chars of posting text", len(jobText)))

	// Step 2: Load profile and analyze the posting concurrently. Both
	// only feed the generation prompt, so neither depends on the other.
	printer.PrintStep(2, totalSteps, "Loading profile and analyzing job posting")

	var candidateProfile *types.CandidateProfile
	var requirements *types.JobRequirements

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := profile.Load(opts.ProfilePath)
		if err != nil {
			return err
		}
		candidateProfile = p
		emitProgress(&opts, runID, StepProfile, fmt.Sprintf("loaded profile for %s", p.Name))
		return nil
	})
	g.Go(func() error {
		r, err := parsing.ExtractJobRequirements(gCtx, client, jobText)
		if err != nil {
			return err
		}
		requirements = r
		emitProgress(&opts, runID, StepAnalyze, fmt.Sprintf("extracted %d required skills", len(r.RequiredSkills)))
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if opts.Verbose {
		printer.PrintJobRequirements(requirements)
	}

	// Step 3: Draft the tailored resume text
	printer.PrintStep(3, totalSteps, "Generating tailored resume text")
	resumeText, err := generation.GenerateResume(ctx, client, candidateProfile, requirements)
	if err != nil {
		return nil, err
	}
	emitProgress(&opts, runID, StepGenerate, fmt.Sprintf("generated %d chars of resume text", len(resumeText)))

	result := &Result{RunID: runID}

	// Step 4: Write the plain text artifact
	printer.PrintStep(4, totalSteps, "Writing resume text")
	result.TextPath = filepath.Join(opts.OutDir, "resume.txt")
	if err := os.WriteFile(result.TextPath, []byte(resumeText+"\n"), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", result.TextPath, err)
	}

	// Step 5: Format into a structured document and render the DOCX
	printer.PrintStep(5, totalSteps, "Rendering DOCX")
	formatted := formatting.Format(resumeText)
	result.DocxPath = filepath.Join(opts.OutDir, "resume.docx")
	if err := docx.Write(formatted, result.DocxPath); err != nil {
		return result, err
	}
	emitProgress(&opts, runID, StepFormat, fmt.Sprintf("rendered %d blocks", len(formatted.Blocks)))

	if opts.SkipPDF {
		result.Warnings = validation.CheckStandardHeadings(resumeText)
		printer.PrintWarnings(result.Warnings)
		printer.PrintArtifacts([]string{result.TextPath, result.DocxPath})
		return result, nil
	}

	// Step 6: Convert to PDF. A missing or failing LibreOffice leaves
	// the text and DOCX artifacts usable, so report and carry on.
	printer.PrintStep(6, totalSteps, "Converting to PDF")
	pdfPath := filepath.Join(opts.OutDir, "resume.pdf")
	if err := convert.ToPDF(ctx, result.DocxPath, pdfPath); err != nil {
		fmt.Printf("Warning: PDF conversion failed: %v\n", err)
		fmt.Printf("The DOCX at %s can be converted manually:\n", result.DocxPath)
		fmt.Printf("  soffice --headless --convert-to pdf --outdir %s %s\n", opts.OutDir, result.DocxPath)

		result.Warnings = validation.CheckStandardHeadings(resumeText)
		printer.PrintWarnings(result.Warnings)
		printer.PrintArtifacts([]string{result.TextPath, result.DocxPath})
		return result, nil
	}
	result.PDFPath = pdfPath
	emitProgress(&opts, runID, StepConvert, "converted DOCX to PDF")

	// Step 7: Flatten annotations and run advisory checks. Flattening
	// failure keeps the unflattened PDF.
	printer.PrintStep(7, totalSteps, "Flattening PDF and validating")
	flatPath := filepath.Join(opts.OutDir, "resume.flattened.pdf")
	if err := pdf.Flatten(pdfPath, flatPath); err != nil {
		if opts.Verbose {
			fmt.Printf("Warning: PDF flattening skipped: %v\n", err)
		}
	} else if err := os.Rename(flatPath, pdfPath); err != nil {
		return result, fmt.Errorf("failed to replace PDF with flattened copy: %w", err)
	}
	emitProgress(&opts, runID, StepFlatten, "flattened PDF annotations")

	result.Warnings = validation.CheckStandardHeadings(resumeText)
	maxPages := opts.MaxPages
	if maxPages <= 0 {
		maxPages = 2
	}
	result.Warnings = append(result.Warnings, validation.CheckPageCount(pdfPath, maxPages)...)
	emitProgress(&opts, runID, StepValidate, fmt.Sprintf("%d warnings", len(result.Warnings)))

	printer.PrintWarnings(result.Warnings)
	printer.PrintArtifacts([]string{result.TextPath, result.DocxPath, result.PDFPath})
	return result, nil
}
