// Package main provides the entry point for the iamfranz autonomy CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "iamfranz",
	Short: "Autonomous daily AI-art pipeline",
	Long:  "iamfranz runs an unattended daily content pipeline for a fixed roster of synthetic artist personas: web research, iterative image generation with deterministic fallbacks, rubric curation, and a structured run artifact tree.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
