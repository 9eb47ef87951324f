package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "csvprof",
	Short: "Profile CSV data: structure, types, quality, statistics",
	Long: `csvprof ingests raw CSV (or xlsx) data, performs tolerant structural
parsing, infers per-column types, and produces a deterministic quality and
statistics report for downstream pipelines.`,
	SilenceUsage: true,
}

func main() {
	// .env is optional; environment variables win when both are set
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
