// Package main provides the entry point for the Resume Agent CLI and HTTP
// API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_agent",
	Short: "Resume Agent HTTP API Server and CLI",
	Long:  "Resume Agent generates tailored resume drafts through an iterative critique-and-refine loop, and learns durable user preferences from feedback.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
