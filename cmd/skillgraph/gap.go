package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agenthands/skillgraph/internal/core"
	"github.com/agenthands/skillgraph/internal/core/model"
)

var gapCmd = &cobra.Command{
	Use:   "gap",
	Short: "Score the user's skills against a target job or the market",
	Long:  "Reads a postings snapshot and scores the user's skills against one job's skill set, or against the aggregate ideal profile (the most demanded skills) when no target job is given.",
	RunE:  runGap,
}

var (
	gapPostings string
	gapOutput   string
	gapSkills   []string
	gapJobID    string
)

func init() {
	gapCmd.Flags().StringVarP(&gapPostings, "postings", "p", "", "Path to input postings JSON file (required)")
	gapCmd.Flags().StringVarP(&gapOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	gapCmd.Flags().StringSliceVarP(&gapSkills, "skills", "s", nil, "User's skills, comma separated")
	gapCmd.Flags().StringVarP(&gapJobID, "job", "j", "", "Target job id (default: aggregate market profile)")

	if err := gapCmd.MarkFlagRequired("postings"); err != nil {
		panic(fmt.Sprintf("failed to mark postings flag as required: %v", err))
	}

	rootCmd.AddCommand(gapCmd)
}

func runGap(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	postings, err := loadPostings(gapPostings, cfg)
	if err != nil {
		return err
	}

	engine := core.NewEngine(cfg, nil, zap.NewNop())
	b, _, err := engine.BuildGraphs(postings)
	if err != nil {
		return fmt.Errorf("failed to build graphs: %w", err)
	}

	target := b.TopSkills(cfg.Analysis.TopN)
	if gapJobID != "" {
		target = b.JobSkills(gapJobID)
		if len(target) == 0 {
			return fmt.Errorf("job %q not found in snapshot or has no skills", gapJobID)
		}
	}

	report := engine.ComputeGap(b, model.UserProfile{Skills: gapSkills}, target)
	return writeJSON(gapOutput, report)
}
