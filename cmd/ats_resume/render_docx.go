package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-resume-builder/internal/docx"
	"github.com/jonathan/ats-resume-builder/internal/formatting"
)

var renderDocxCommand = &cobra.Command{
	Use:   "render-docx",
	Short: "Render resume text into a styled DOCX",
	Long:  "Reads already-generated resume text from a file and renders it into an ATS-friendly DOCX without calling the generation service.",
	RunE:  runRenderDocxCmd,
}

var (
	renderInput  string
	renderOutput string
)

func init() {
	renderDocxCommand.Flags().StringVarP(&renderInput, "input", "i", "", "Path to resume text file (required)")
	renderDocxCommand.Flags().StringVarP(&renderOutput, "output", "o", "resume.docx", "Path for the DOCX output")
	_ = renderDocxCommand.MarkFlagRequired("input")

	rootCmd.AddCommand(renderDocxCommand)
}

func runRenderDocxCmd(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(renderInput)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", renderInput, err)
	}

	formatted := formatting.Format(string(data))
	if err := docx.Write(formatted, renderOutput); err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%d blocks)\n", renderOutput, len(formatted.Blocks))
	return nil
}
