// Package core wires the analysis components into the engine the server and
// CLI call: graph construction, centralities, communities, job clustering and
// gap scoring over one static snapshot of postings. Each run is stateless —
// everything is re-derived from its inputs.
package core

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agenthands/skillgraph/internal/config"
	"github.com/agenthands/skillgraph/internal/core/centrality"
	"github.com/agenthands/skillgraph/internal/core/cluster"
	"github.com/agenthands/skillgraph/internal/core/community"
	"github.com/agenthands/skillgraph/internal/core/gap"
	"github.com/agenthands/skillgraph/internal/core/graph"
	"github.com/agenthands/skillgraph/internal/core/model"
	"github.com/agenthands/skillgraph/internal/driver"
)

type Engine struct {
	Taxonomy *model.Taxonomy
	Config   *config.Config
	Store    *driver.SnapshotStore // nil disables persistence
	Log      *zap.Logger
}

func NewEngine(cfg *config.Config, store *driver.SnapshotStore, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		Taxonomy: cfg.BuildTaxonomy(),
		Config:   cfg,
		Store:    store,
		Log:      log,
	}
}

// BuildGraphs constructs the bipartite job–skill graph and its co-occurrence
// projection from a posting snapshot.
func (e *Engine) BuildGraphs(postings []model.JobPosting) (*graph.Bipartite, *graph.Cooccurrence, error) {
	b, err := graph.BuildBipartite(postings, e.Taxonomy)
	if err != nil {
		return nil, nil, err
	}
	return b, graph.Project(b), nil
}

// ComputeCentralities runs the centrality analyzer with the configured
// weighting and iteration cap.
func (e *Engine) ComputeCentralities(g *graph.Cooccurrence) (model.CentralityScores, error) {
	return centrality.Compute(g, centrality.Config{
		Weighted:      e.Config.Analysis.Weighted,
		MaxIterations: e.Config.Analysis.MaxIterations,
	})
}

// DetectCommunities partitions the co-occurrence graph with the given seed.
func (e *Engine) DetectCommunities(g *graph.Cooccurrence, seed int64) (model.CommunityAssignment, float64, error) {
	return community.Detect(g, seed)
}

// ClusterJobs vectorizes the snapshot's jobs over the taxonomy vocabulary,
// standardizes, and k-means clusters them into typologies.
func (e *Engine) ClusterJobs(ctx context.Context, b *graph.Bipartite, k int, seed int64) (*model.ClusterResult, error) {
	vectors, err := cluster.Vectorize(ctx, b, e.Taxonomy.Vocabulary())
	if err != nil {
		return nil, err
	}
	cluster.Standardize(vectors)
	return cluster.KMeans(vectors, b.Jobs(), cluster.Options{
		K:             k,
		Seed:          seed,
		Restarts:      e.Config.Clustering.Restarts,
		MaxIterations: e.Config.Clustering.MaxIterations,
	})
}

// ComputeGap scores the user against an explicit target skill set.
func (e *Engine) ComputeGap(b *graph.Bipartite, user model.UserProfile, targetSkills []string) model.GapReport {
	scorer := gap.NewScorer(b, e.Taxonomy)
	return scorer.Score(e.canonicalSkills(user.Skills), e.canonicalSkills(targetSkills))
}

// Analyze runs the full pipeline over one snapshot. Non-fatal degradations —
// eigenvector non-convergence, too few jobs for k clusters — are reported in
// the corresponding note fields while the rest of the report stays populated.
func (e *Engine) Analyze(ctx context.Context, postings []model.JobPosting, user model.UserProfile) (*model.AnalysisReport, error) {
	b, g, err := e.BuildGraphs(postings)
	if err != nil {
		return nil, err
	}

	report := &model.AnalysisReport{
		RunID:      uuid.New().String(),
		JobCount:   b.JobCount(),
		SkillCount: b.SkillCount(),
	}
	e.Log.Info("graphs built",
		zap.String("run_id", report.RunID),
		zap.Int("jobs", report.JobCount),
		zap.Int("skills", report.SkillCount),
		zap.Int("cooccurrence_edges", g.EdgeCount()),
	)

	if g.NodeCount() > 0 {
		scores, err := e.ComputeCentralities(g)
		var conv *model.ConvergenceError
		switch {
		case errors.As(err, &conv):
			report.CentralityNote = conv.Error() + "; other centralities are still available"
			e.Log.Warn("eigenvector centrality unavailable", zap.Error(conv))
		case err != nil:
			return nil, err
		}
		report.Centralities = scores
		report.BridgeSkills = bridgeSkills(scores, e.Config.Analysis.TopN)

		assignment, modularity, err := e.DetectCommunities(g, e.Config.Analysis.Seed)
		if err != nil {
			return nil, err
		}
		report.Communities = assignment
		report.Modularity = modularity
	}

	if b.JobCount() > 0 {
		clusters, err := e.ClusterJobs(ctx, b, e.Config.Clustering.K, e.Config.Clustering.Seed)
		var insufficient *model.InsufficientDataError
		switch {
		case errors.As(err, &insufficient):
			report.ClusterNote = insufficient.Error()
			e.Log.Warn("clustering skipped", zap.Error(insufficient))
		case err != nil:
			return nil, err
		default:
			report.Clusters = clusters
		}
	}

	scorer := gap.NewScorer(b, e.Taxonomy)
	scorer.Centralities = report.Centralities
	userSkills := e.canonicalSkills(user.Skills)
	report.TopSkills = topFrequencies(b, e.Config.Analysis.TopN)
	report.JobGaps = scorer.JobRows(b, userSkills)
	marketGap := scorer.Score(userSkills, b.TopSkills(e.Config.Analysis.TopN))
	report.MarketGap = &marketGap

	if e.Store != nil {
		if err := e.Store.SaveSnapshot(ctx, report.RunID, b, g, e.Taxonomy); err != nil {
			return nil, err
		}
	}

	return report, nil
}

// canonicalSkills resolves raw skill names against the taxonomy. Unknown
// entries are dropped: they cannot match any validated job skill.
func (e *Engine) canonicalSkills(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if name, ok := e.Taxonomy.Canonical(s); ok {
			out = append(out, name)
		}
	}
	return out
}

func topFrequencies(b *graph.Bipartite, n int) []model.SkillFrequency {
	freq := b.SkillFrequencies()
	if n < len(freq) {
		freq = freq[:n]
	}
	return freq
}

// bridgeSkills returns the topN skills by betweenness, ties alphabetical.
func bridgeSkills(scores model.CentralityScores, topN int) []model.BridgeSkill {
	out := make([]model.BridgeSkill, 0, len(scores))
	for skill, c := range scores {
		out = append(out, model.BridgeSkill{Skill: skill, Betweenness: c.Betweenness, Degree: c.Degree})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Betweenness != out[j].Betweenness {
			return out[i].Betweenness > out[j].Betweenness
		}
		return out[i].Skill < out[j].Skill
	})
	if topN < len(out) {
		out = out[:topN]
	}
	return out
}
