package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/pipeline"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/skills"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job description",
	Long: `Parses the resume (.pdf, .docx, or .txt), ingests the job description from
a file, inline text, or a job-posting URL, and reports the match: fused score,
semantic and ATS components, matched/missing skills, and recommendations.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath string
	analyzeResume     string
	analyzeJD         string
	analyzeJDText     string
	analyzeJDURL      string
	analyzeTaxonomy   string
	analyzeFresher    bool
	analyzeUseBrowser bool
	analyzeVerbose    bool
	analyzeAPIKey     string
	analyzeJSON       bool
)

func init() {
	// Config file flag (processed first)
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume file (.pdf, .docx, .txt)")
	analyzeCmd.Flags().StringVarP(&analyzeJD, "jd", "j", "", "Path to job description text file")
	analyzeCmd.Flags().StringVar(&analyzeJDText, "jd-text", "", "Inline job description text")
	analyzeCmd.Flags().StringVar(&analyzeJDURL, "jd-url", "", "URL to fetch job posting from")
	analyzeCmd.Flags().StringVarP(&analyzeTaxonomy, "taxonomy", "t", "", "Path to custom skill taxonomy file (one skill per line)")
	analyzeCmd.Flags().BoolVar(&analyzeFresher, "fresher", false, "Force fresher weighting regardless of detected experience")
	analyzeCmd.Flags().BoolVar(&analyzeUseBrowser, "use-browser", false, "Use headless browser for SPA job boards (requires Chrome)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed debug information")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output the full report as JSON")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key for embedding similarity (optional, defaults to GEMINI_API_KEY env var; TF-IDF is used without one)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadAnalyzeConfig(cmd)
	if err != nil {
		return err
	}

	// Parse resume
	resume, err := parsing.ParseResume(cfg.Resume)
	if err != nil {
		return err
	}

	// Ingest job description
	var jd string
	switch {
	case cfg.JDURL != "":
		jd, err = ingestion.FromURL(ctx, cfg.JDURL, ingestion.Options{
			UseBrowser: cfg.UseBrowser,
			Verbose:    cfg.Verbose,
		})
	case cfg.JD != "":
		jd, err = ingestion.FromFile(cfg.JD)
	default:
		jd, err = ingestion.FromText(analyzeJDText)
	}
	if err != nil {
		return err
	}

	// Taxonomy
	taxonomy := skills.DefaultTaxonomy()
	if cfg.Taxonomy != "" {
		taxonomy, err = skills.LoadTaxonomyFile(cfg.Taxonomy)
		if err != nil {
			return err
		}
	}

	strategy := scoring.Resolve(ctx, cfg.APIKey, cfg.Verbose)

	analyzer := pipeline.NewAnalyzer(taxonomy, strategy)
	report, err := analyzer.Analyze(ctx, pipeline.Input{
		Resume:         resume,
		JobDescription: jd,
		FresherMode:    cfg.FresherMode,
	})
	if err != nil {
		return err
	}

	if analyzeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	observability.NewPrinter(os.Stdout).PrintReport(report, resume)
	return nil
}

// loadAnalyzeConfig merges the config file, explicit flags, and environment
// into one validated configuration. Explicitly set flags always win.
func loadAnalyzeConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loadedCfg
		if analyzeVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", analyzeConfigPath)
		}
	}

	// Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("resume") {
		cfg.Resume = analyzeResume
	}
	if cmd.Flags().Changed("jd") {
		cfg.JD = analyzeJD
	}
	if cmd.Flags().Changed("jd-url") {
		cfg.JDURL = analyzeJDURL
	}
	if cmd.Flags().Changed("taxonomy") {
		cfg.Taxonomy = analyzeTaxonomy
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("fresher") {
		cfg.FresherMode = analyzeFresher
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = analyzeUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}

	// Validate required fields
	if cfg.Resume == "" {
		return cfg, fmt.Errorf("--resume is required (via flag or config)")
	}

	sources := 0
	for _, set := range []bool{cfg.JD != "", analyzeJDText != "", cfg.JDURL != ""} {
		if set {
			sources++
		}
	}
	if sources == 0 {
		return cfg, fmt.Errorf("one of --jd, --jd-text, or --jd-url must be provided")
	}
	if sources > 1 {
		return cfg, fmt.Errorf("--jd, --jd-text, and --jd-url are mutually exclusive; provide only one")
	}

	// API key is optional; without one the TF-IDF fallback is used
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	return cfg, nil
}
