// Package main implements the skillgraph CLI for offline analysis of job
// posting snapshots.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillgraph",
	Short: "Skill graph and market structure analysis",
	Long:  "Analyzes job posting snapshots: builds the job-skill graph, computes skill centralities and communities, clusters jobs into typologies, and scores a user's skill gap against the market.",
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to TOML config file (defaults to the built-in configuration)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
