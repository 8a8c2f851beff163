package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeffschram/iamfranz/internal/pipeline"
)

var resetCommand = &cobra.Command{
	Use:   "reset",
	Short: "Wipe the gallery record store and reseed the roster profiles",
	Long: `Deletes every artwork and artist from the gallery record store, then
recreates the fixed roster's gallery profiles. Run artifacts on disk are
untouched.`,
	RunE: resetStoreCmd,
}

var resetDBURL string

func init() {
	resetCommand.Flags().StringVar(&resetDBURL, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(resetCommand)
}

func resetStoreCmd(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	dbURL := resetDBURL
	if dbURL == "" {
		dbURL = os.Getenv("DATABASE_URL")
	}
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable or --db-url flag is required")
	}

	return pipeline.ResetStore(ctx, dbURL)
}
