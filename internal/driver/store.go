package driver

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/agenthands/skillgraph/internal/core/graph"
	"github.com/agenthands/skillgraph/internal/core/model"
)

// SnapshotStore writes one analysis run's graphs to the database. Skill names
// keep their canonical casing and co-occurrence weights are stored as exact
// integers, so a reloaded snapshot reproduces the in-memory graphs.
type SnapshotStore struct {
	Driver GraphDriver
	Log    *zap.Logger
}

func NewSnapshotStore(d GraphDriver, log *zap.Logger) *SnapshotStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &SnapshotStore{Driver: d, Log: log}
}

// SaveSnapshot persists the bipartite graph and its projection under runID.
// Any previous data for the same runID is removed first.
func (s *SnapshotStore) SaveSnapshot(ctx context.Context, runID string, b *graph.Bipartite, g *graph.Cooccurrence, taxonomy *model.Taxonomy) error {
	if _, err := s.Driver.ExecuteQuery(ctx, ClearRunQuery, map[string]interface{}{"run_id": runID}); err != nil {
		return fmt.Errorf("failed to clear run %s: %w", runID, err)
	}

	for _, skill := range b.Skills() {
		params := map[string]interface{}{
			"name":      skill,
			"run_id":    runID,
			"category":  taxonomy.Category(skill),
			"frequency": b.SkillDegree(skill),
		}
		if _, err := s.Driver.ExecuteQuery(ctx, SaveSkillNodeQuery, params); err != nil {
			return fmt.Errorf("failed to save skill node %q: %w", skill, err)
		}
	}

	for _, jobID := range b.Jobs() {
		posting, _ := b.Posting(jobID)
		params := map[string]interface{}{
			"id":       jobID,
			"run_id":   runID,
			"title":    posting.Title,
			"company":  posting.Company,
			"location": posting.Location,
		}
		if _, err := s.Driver.ExecuteQuery(ctx, SaveJobNodeQuery, params); err != nil {
			return fmt.Errorf("failed to save job node %q: %w", jobID, err)
		}

		for _, skill := range b.JobSkills(jobID) {
			params := map[string]interface{}{
				"job_id": jobID,
				"skill":  skill,
				"run_id": runID,
			}
			if _, err := s.Driver.ExecuteQuery(ctx, SaveMentionEdgeQuery, params); err != nil {
				return fmt.Errorf("failed to save mention edge %q->%q: %w", jobID, skill, err)
			}
		}
	}

	edges := 0
	for _, source := range g.Nodes() {
		for _, target := range g.Neighbors(source) {
			if source >= target {
				continue // store each undirected edge once
			}
			params := map[string]interface{}{
				"source": source,
				"target": target,
				"run_id": runID,
				"weight": g.Weight(source, target),
			}
			if _, err := s.Driver.ExecuteQuery(ctx, SaveCooccurrenceEdgeQuery, params); err != nil {
				return fmt.Errorf("failed to save co-occurrence edge %q-%q: %w", source, target, err)
			}
			edges++
		}
	}

	s.Log.Info("snapshot persisted",
		zap.String("run_id", runID),
		zap.Int("jobs", b.JobCount()),
		zap.Int("skills", b.SkillCount()),
		zap.Int("cooccurrence_edges", edges),
	)
	return nil
}
