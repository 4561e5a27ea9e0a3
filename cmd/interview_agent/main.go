// Package main provides the entry point for the mock interview agent.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "interview_agent",
	Short: "Mock coding interview content and feedback service",
	Long:  "Mock interview agent generates company-flavored coding interview problems, mints room access tokens for realtime sessions, and evaluates finished sessions into structured feedback.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
