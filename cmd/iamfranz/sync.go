package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeffschram/iamfranz/internal/pipeline"
)

var syncCommand = &cobra.Command{
	Use:   "sync",
	Short: "Push a finished run's artifacts to the gallery record store",
	Long: `Reads a finished run's records, scorecards, and finalist images back from
the day directory and pushes them to the gallery record store. Re-syncing
the same run is idempotent: existing artworks are skipped and daily
updates are replaced.`,
	RunE: syncRunCmd,
}

var (
	syncDayDir  string
	syncDate    string
	syncDBURL   string
	syncVerbose bool
)

func init() {
	syncCommand.Flags().StringVar(&syncDayDir, "day-dir", "", "Run day directory (default runs/<date>_day1)")
	syncCommand.Flags().StringVar(&syncDate, "date", "", "Run date YYYY-MM-DD (default today)")
	syncCommand.Flags().StringVar(&syncDBURL, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")
	syncCommand.Flags().BoolVarP(&syncVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(syncCommand)
}

func syncRunCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	date := syncDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid --date %q: %w", date, err)
	}

	dayDir := syncDayDir
	if dayDir == "" {
		dayDir = filepath.Join("runs", date+"_day1")
	}

	dbURL := syncDBURL
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	return pipeline.SyncRun(ctx, pipeline.SyncOptions{
		DayDir:      dayDir,
		Date:        date,
		DatabaseURL: dbURL,
		Verbose:     syncVerbose,
	})
}
