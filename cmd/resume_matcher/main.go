// Package main provides the entry point for the Resume Matcher CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_matcher",
	Short: "Resume vs job-description match analyzer",
	Long:  "Resume Matcher scores how well a resume matches a job description (semantic similarity plus ATS keyword coverage), lists matched and missing skills, and suggests what to strengthen.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
