// Package main provides the entry point for the ProFel skill matching CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "profel",
	Short: "Profile-to-job skill matching engine",
	Long:  "ProFel matches developer profiles against job postings: it normalizes skills, runs weighted matching, blends in semantic similarity, and ranks jobs per candidate.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
