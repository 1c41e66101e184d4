package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/skillgraph/internal/config"
	"github.com/agenthands/skillgraph/internal/core/model"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Taxonomy = []model.TaxonomySkill{
		{Name: "Python", Category: "programming"},
		{Name: "SQL", Category: "programming"},
		{Name: "Spark", Category: "bigdata"},
		{Name: "Excel", Category: "analytics"},
	}
	cfg.Clustering.K = 2
	return cfg
}

func snapshotPostings() []model.JobPosting {
	return []model.JobPosting{
		{ID: "J1", Title: "Data Engineer", Skills: []string{"Python", "SQL"}},
		{ID: "J2", Title: "ML Engineer", Skills: []string{"Python", "Spark"}},
		{ID: "J3", Title: "Analyst", Skills: []string{"SQL", "Excel"}},
	}
}

func TestAnalyzeFullPipeline(t *testing.T) {
	e := NewEngine(testConfig(), nil, nil)

	report, err := e.Analyze(context.Background(), snapshotPostings(), model.UserProfile{
		Skills: []string{"Python", "SQL"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 3, report.JobCount)
	assert.Equal(t, 4, report.SkillCount)
	assert.Empty(t, report.CentralityNote)
	assert.Empty(t, report.ClusterNote)

	require.Len(t, report.Centralities, 4)
	assert.InDelta(t, 2.0/3.0, report.Centralities["Python"].Degree, 1e-12)
	assert.InDelta(t, 2.0/3.0, report.Centralities["SQL"].Degree, 1e-12)

	require.Len(t, report.Communities, 4)
	require.NotNil(t, report.Clusters)
	assert.Len(t, report.Clusters.Assignment, 3)

	// Python and SQL lead both the demand table and the bridge list.
	require.NotEmpty(t, report.TopSkills)
	assert.Equal(t, "Python", report.TopSkills[0].Skill)
	require.NotEmpty(t, report.BridgeSkills)

	require.Len(t, report.JobGaps, 3)
	assert.Equal(t, "J1", report.JobGaps[0].JobID)
	assert.Equal(t, 1.0, report.JobGaps[0].MatchRatio)

	require.NotNil(t, report.MarketGap)
	assert.Greater(t, report.MarketGap.MatchRatio, 0.0)
}

func TestAnalyzeValidationError(t *testing.T) {
	e := NewEngine(testConfig(), nil, nil)

	_, err := e.Analyze(context.Background(), []model.JobPosting{
		{ID: "J1", Skills: []string{"Fortran"}},
	}, model.UserProfile{})

	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "J1", verr.JobID)
	assert.Equal(t, "Fortran", verr.Skill)
}

func TestAnalyzeClusterNoteWhenTooFewJobs(t *testing.T) {
	cfg := testConfig()
	cfg.Clustering.K = 4
	e := NewEngine(cfg, nil, nil)

	report, err := e.Analyze(context.Background(), snapshotPostings()[:2], model.UserProfile{})
	require.NoError(t, err)

	assert.Nil(t, report.Clusters)
	assert.NotEmpty(t, report.ClusterNote)
	// The rest of the report still comes through.
	assert.NotEmpty(t, report.Centralities)
	assert.NotEmpty(t, report.Communities)
}

func TestAnalyzeCentralityNoteOnNonConvergence(t *testing.T) {
	cfg := testConfig()
	cfg.Analysis.MaxIterations = 1
	e := NewEngine(cfg, nil, nil)

	report, err := e.Analyze(context.Background(), snapshotPostings(), model.UserProfile{})
	require.NoError(t, err)

	assert.Contains(t, report.CentralityNote, "still available")
	require.NotEmpty(t, report.Centralities)
	assert.Equal(t, 0.0, report.Centralities["Python"].Eigenvector)
	assert.Greater(t, report.Centralities["SQL"].Betweenness, 0.0)
}

func TestAnalyzeEmptySnapshot(t *testing.T) {
	e := NewEngine(testConfig(), nil, nil)

	report, err := e.Analyze(context.Background(), nil, model.UserProfile{})
	require.NoError(t, err)

	assert.Equal(t, 0, report.JobCount)
	assert.Equal(t, 0, report.SkillCount)
	assert.Empty(t, report.Centralities)
	assert.Nil(t, report.Clusters)
	require.NotNil(t, report.MarketGap)
	// Empty user against an empty market is a vacuous perfect match.
	assert.Equal(t, 1.0, report.MarketGap.MatchRatio)
}

func TestComputeGapDropsUnknownSkills(t *testing.T) {
	e := NewEngine(testConfig(), nil, nil)
	b, _, err := e.BuildGraphs(snapshotPostings())
	require.NoError(t, err)

	// "Juggling" is not in the taxonomy and cannot match anything.
	report := e.ComputeGap(b, model.UserProfile{Skills: []string{"python", "Juggling"}},
		[]string{"Python", "Spark"})

	assert.InDelta(t, 0.5, report.MatchRatio, 1e-12)
	assert.Equal(t, []string{"Python"}, report.MatchedSkills)
	require.Len(t, report.MissingSkills, 1)
	assert.Equal(t, "Spark", report.MissingSkills[0].Skill)
}

func TestAnalyzeSeedReproducibility(t *testing.T) {
	e := NewEngine(testConfig(), nil, nil)

	first, err := e.Analyze(context.Background(), snapshotPostings(), model.UserProfile{})
	require.NoError(t, err)

	again, err := e.Analyze(context.Background(), snapshotPostings(), model.UserProfile{})
	require.NoError(t, err)

	assert.Equal(t, first.Communities, again.Communities)
	assert.Equal(t, first.Modularity, again.Modularity)
	assert.Equal(t, first.Clusters.Assignment, again.Clusters.Assignment)
	assert.Equal(t, first.Centralities, again.Centralities)
}
