// Package main provides the entry point for the ATS resume builder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_resume",
	Short: "ATS resume builder",
	Long:  "ATS resume builder generates ATS-friendly resumes tailored to job postings: drafted text, a styled DOCX, and a flattened PDF.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
