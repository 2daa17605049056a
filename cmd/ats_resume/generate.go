package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-resume-builder/internal/config"
	"github.com/jonathan/ats-resume-builder/internal/pipeline"
)

var generateCommand = &cobra.Command{
	Use:   "generate",
	Short: "Run the full resume build pipeline end-to-end",
	Long: `Runs the entire build: ingestion -> job analysis -> text generation -> formatting -> DOCX -> PDF conversion -> flattening.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runGenerateCmd,
}

var (
	genConfigPath string
	genProfile    string
	genJob        string
	genJobURL     string
	genOutDir     string
	genAPIKey     string
	genUseBrowser bool
	genVerbose    bool
	genMaxPages   int
	genSkipPDF    bool
)

func init() {
	// Config file flag (processed first)
	generateCommand.Flags().StringVar(&genConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	generateCommand.Flags().StringVarP(&genProfile, "profile", "p", "", "Path to candidate profile JSON file")
	generateCommand.Flags().StringVarP(&genJob, "job", "j", "", "Path to job posting file (.txt, .md, .pdf, .docx; mutually exclusive with --job-url)")
	generateCommand.Flags().StringVar(&genJobURL, "job-url", "", "URL to fetch job posting from (mutually exclusive with --job)")
	generateCommand.Flags().StringVarP(&genOutDir, "out", "o", "", "Output directory for generated artifacts")
	generateCommand.Flags().BoolVar(&genUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	generateCommand.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print detailed progress information")
	generateCommand.Flags().IntVar(&genMaxPages, "max-pages", 0, "Warn when the PDF exceeds this many pages")
	generateCommand.Flags().BoolVar(&genSkipPDF, "skip-pdf", false, "Stop after the DOCX, skip LibreOffice conversion")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	generateCommand.Flags().StringVar(&genAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	rootCmd.AddCommand(generateCommand)
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if genConfigPath != "" {
		loadedCfg, err := config.LoadConfig(genConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
		if genVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", genConfigPath)
		}
	}

	// CLI overrides take priority; only apply flags that were set.
	if cmd.Flags().Changed("profile") {
		cfg.Profile = genProfile
	}
	if cmd.Flags().Changed("job") {
		cfg.Job = genJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = genJobURL
	}
	if cmd.Flags().Changed("out") {
		cfg.OutDir = genOutDir
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = genAPIKey
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = genUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = genVerbose
	}
	if cmd.Flags().Changed("max-pages") {
		cfg.MaxPages = genMaxPages
	}
	if cmd.Flags().Changed("skip-pdf") {
		cfg.SkipPDF = genSkipPDF
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		OutDir:   "out",
		MaxPages: config.DefaultMaxPages,
	})

	if cfg.Profile == "" {
		return fmt.Errorf("--profile is required (via flag or config)")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided (via flag or config)")
	}
	if cfg.Job != "" && cfg.JobURL != "" {
		return fmt.Errorf("--job and --job-url are mutually exclusive; provide only one")
	}

	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	_, err := pipeline.Run(ctx, pipeline.RunOptions{
		ProfilePath: cfg.Profile,
		JobPath:     cfg.Job,
		JobURL:      cfg.JobURL,
		OutDir:      cfg.OutDir,
		APIKey:      cfg.APIKey,
		UseBrowser:  cfg.UseBrowser,
		Verbose:     cfg.Verbose,
		MaxPages:    cfg.MaxPages,
		SkipPDF:     cfg.SkipPDF,
	})
	return err
}
