package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agenthands/skillgraph/internal/config"
	"github.com/agenthands/skillgraph/internal/core"
	"github.com/agenthands/skillgraph/internal/core/model"
	"github.com/agenthands/skillgraph/internal/extract"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full analysis over a posting snapshot",
	Long:  "Reads a JSON file of job postings, builds the skill graphs, computes centralities, communities and job clusters, scores the user's gap, and writes the full report as JSON.",
	RunE:  runAnalyze,
}

var (
	analyzePostings string
	analyzeOutput   string
	analyzeSkills   []string
	analyzeK        int
	analyzeSeed     int64
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzePostings, "postings", "p", "", "Path to input postings JSON file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "out", "o", "", "Path to output report JSON file (default: stdout)")
	analyzeCmd.Flags().StringSliceVarP(&analyzeSkills, "skills", "s", nil, "User's skills, comma separated")
	analyzeCmd.Flags().IntVarP(&analyzeK, "k", "k", 0, "Number of job clusters (default from config)")
	analyzeCmd.Flags().Int64Var(&analyzeSeed, "seed", 0, "Random seed for community detection and clustering")

	if err := analyzeCmd.MarkFlagRequired("postings"); err != nil {
		panic(fmt.Sprintf("failed to mark postings flag as required: %v", err))
	}

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if analyzeK > 0 {
		cfg.Clustering.K = analyzeK
	}
	if cmd.Flags().Changed("seed") {
		cfg.Analysis.Seed = analyzeSeed
		cfg.Clustering.Seed = analyzeSeed
	}

	postings, err := loadPostings(analyzePostings, cfg)
	if err != nil {
		return err
	}

	engine := core.NewEngine(cfg, nil, zap.NewNop())
	report, err := engine.Analyze(context.Background(), postings, model.UserProfile{Skills: analyzeSkills})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	return writeJSON(analyzeOutput, report)
}

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// loadPostings reads the snapshot file and fills skills from raw descriptions
// through the phrase matcher where the extraction step has not run yet.
func loadPostings(path string, cfg *config.Config) ([]model.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read postings file %s: %w", path, err)
	}

	var postings []model.JobPosting
	if err := json.Unmarshal(data, &postings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal postings JSON: %w", err)
	}

	matcher := extract.NewPhraseMatcher(cfg.BuildTaxonomy())
	for i := range postings {
		if len(postings[i].Skills) == 0 && postings[i].Description != "" {
			postings[i].Skills = matcher.Extract(postings[i].Description)
		}
	}
	return postings, nil
}

func writeJSON(path string, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output JSON: %w", err)
	}

	if path == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(out))
		return nil
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Report written to %s\n", path)
	return nil
}
