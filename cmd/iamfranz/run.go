package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeffschram/iamfranz/internal/config"
	"github.com/jeffschram/iamfranz/internal/pipeline"
	"github.com/jeffschram/iamfranz/internal/studio"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run one full autonomy day for every rostered artist",
	Long: `Executes one unattended autonomy day: research -> iterations -> finalist -> curation -> artifact tree.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAutonomyDayCmd,
}

var (
	runConfigPath  string
	runDayDir      string
	runResearchDir string
	runDate        string
	runImageModel  string
	runIterations  int
	runAPIKey      string
	runNoImages    bool
	runUseBrowser  bool
	runVerbose     bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVar(&runDayDir, "day-dir", "", "Run day directory (default runs/<date>_day1)")
	runCommand.Flags().StringVar(&runResearchDir, "research-dir", "", "Shared research tree directory (default runs/research_tree)")
	runCommand.Flags().StringVar(&runDate, "date", "", "Run date YYYY-MM-DD (default today)")
	runCommand.Flags().StringVar(&runImageModel, "image-model", "", "Image model requested from the generation service")
	runCommand.Flags().IntVar(&runIterations, "iterations", 0, "Generation iterations per artist")
	runCommand.Flags().BoolVar(&runNoImages, "no-images", false, "Skip image generation entirely")
	runCommand.Flags().BoolVar(&runUseBrowser, "use-browser", false, "Use headless browser for JavaScript-rendered research pages (requires Chrome)")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var OPENAI_API_KEY.
	// An empty key is valid: every image becomes a fallback placeholder.
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Image service API key (optional, defaults to OPENAI_API_KEY env var)")

	rootCmd.AddCommand(runCommand)
}

func runAutonomyDayCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if runConfigPath != "" {
		loadedCfg, err := config.LoadConfig(runConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
		if runVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", runConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("day-dir") {
		cfg.DayDir = runDayDir
	}
	if cmd.Flags().Changed("research-dir") {
		cfg.ResearchDir = runResearchDir
	}
	if cmd.Flags().Changed("date") {
		cfg.Date = runDate
	}
	if cmd.Flags().Changed("image-model") {
		cfg.ImageModel = runImageModel
	}
	if cmd.Flags().Changed("iterations") {
		cfg.Iterations = runIterations
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = runAPIKey
	}
	if cmd.Flags().Changed("no-images") {
		cfg.NoImages = runNoImages
	}
	if cmd.Flags().Changed("use-browser") {
		cfg.UseBrowser = runUseBrowser
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = runVerbose
	}

	// Step 3: Apply defaults for unset values
	date := cfg.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	defaults := config.Config{
		Date:        date,
		DayDir:      filepath.Join("runs", date+"_day1"),
		ResearchDir: filepath.Join("runs", "research_tree"),
		ImageModel:  "gpt-image-1",
		Iterations:  studio.DefaultIterations,
	}
	cfg = cfg.MergeWithDefaults(defaults)

	// Step 4: Validate merged configuration
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Step 5: Credential handling. Both keys are optional; generation and
	// narrative degrade to deterministic fallbacks without them.
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	if cfg.GeminiAPIKey == "" {
		cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}

	opts := pipeline.RunOptions{
		DayDir:         cfg.DayDir,
		ResearchDir:    cfg.ResearchDir,
		Date:           cfg.Date,
		ImageModel:     cfg.ImageModel,
		Iterations:     cfg.Iterations,
		APIKey:         cfg.APIKey,
		GeminiAPIKey:   cfg.GeminiAPIKey,
		GenerateImages: !cfg.NoImages,
		UseBrowser:     cfg.UseBrowser,
		Verbose:        cfg.Verbose,
	}

	return pipeline.RunPipeline(ctx, opts)
}
