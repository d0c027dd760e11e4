// Package main provides the entry point for the notice agent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "notice_agent",
	Short: "University notice qualification agent",
	Long:  "notice_agent extracts structured qualification records from university notices, resolves their application time windows, and checks user profiles against them.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
