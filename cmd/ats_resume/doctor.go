package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-resume-builder/internal/convert"
)

var doctorCommand = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the environment can run the full pipeline",
	Long:  "Verifies the Gemini API key and the LibreOffice installation. Exits non-zero if PDF conversion is unavailable.",
	RunE:  runDoctorCmd,
}

func init() {
	rootCmd.AddCommand(doctorCommand)
}

func runDoctorCmd(_ *cobra.Command, _ []string) error {
	ok := true

	if os.Getenv("GEMINI_API_KEY") != "" {
		fmt.Println("ok: GEMINI_API_KEY is set")
	} else {
		fmt.Println("missing: GEMINI_API_KEY is not set; pass --api-key to generate instead")
	}

	version, err := convert.Version(context.Background())
	if err != nil {
		fmt.Printf("missing: LibreOffice: %v\n", err)
		ok = false
	} else {
		fmt.Printf("ok: %s\n", version)
	}

	if !ok {
		return fmt.Errorf("environment is not ready for PDF conversion")
	}
	return nil
}
