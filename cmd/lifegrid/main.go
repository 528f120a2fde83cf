// Package main provides the entry point for the lifegrid CLI and HTTP server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lifegrid",
	Short: "Life-in-weeks grid builder",
	Long:  "lifegrid turns a birth date and dated event calendars into a deterministic week-by-week life grid, as JSON or a standalone HTML page, via CLI or REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
