package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-resume-builder/internal/convert"
	"github.com/jonathan/ats-resume-builder/internal/pdf"
)

var convertPdfCommand = &cobra.Command{
	Use:   "convert-pdf",
	Short: "Convert a DOCX resume to a flattened PDF",
	Long:  "Converts a DOCX to PDF with LibreOffice and removes annotations from the result so ATS parsers see plain text only.",
	RunE:  runConvertPdfCmd,
}

var (
	convertInput  string
	convertOutput string
	convertNoFlat bool
)

func init() {
	convertPdfCommand.Flags().StringVarP(&convertInput, "input", "i", "", "Path to DOCX file (required)")
	convertPdfCommand.Flags().StringVarP(&convertOutput, "output", "o", "", "Path for the PDF output (defaults to the input name with .pdf)")
	convertPdfCommand.Flags().BoolVar(&convertNoFlat, "no-flatten", false, "Skip annotation flattening")
	_ = convertPdfCommand.MarkFlagRequired("input")

	rootCmd.AddCommand(convertPdfCommand)
}

func runConvertPdfCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	output := convertOutput
	if output == "" {
		output = strings.TrimSuffix(convertInput, filepath.Ext(convertInput)) + ".pdf"
	}

	if err := convert.ToPDF(ctx, convertInput, output); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", output)

	if convertNoFlat {
		return nil
	}

	flatPath := strings.TrimSuffix(output, ".pdf") + ".flattened.pdf"
	if err := pdf.Flatten(output, flatPath); err != nil {
		fmt.Printf("Warning: flattening skipped: %v\n", err)
		return nil
	}
	if err := os.Rename(flatPath, output); err != nil {
		return fmt.Errorf("failed to replace PDF with flattened copy: %w", err)
	}
	fmt.Printf("Flattened %s\n", output)
	return nil
}
