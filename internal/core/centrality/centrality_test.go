package centrality

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/skillgraph/internal/core/graph"
	"github.com/agenthands/skillgraph/internal/core/model"
)

func buildGraph(t *testing.T, postings []model.JobPosting, skills ...model.TaxonomySkill) *graph.Cooccurrence {
	t.Helper()
	b, err := graph.BuildBipartite(postings, model.NewTaxonomy(skills))
	require.NoError(t, err)
	return graph.Project(b)
}

func analystSkills() []model.TaxonomySkill {
	return []model.TaxonomySkill{
		{Name: "Python"}, {Name: "SQL"}, {Name: "Spark"}, {Name: "Excel"}, {Name: "Tableau"},
	}
}

func TestComputeEmptyGraph(t *testing.T) {
	g := buildGraph(t, nil, analystSkills()...)

	_, err := Compute(g, Config{})
	var empty *model.EmptyGraphError
	require.ErrorAs(t, err, &empty)
}

func TestDegreeCentrality(t *testing.T) {
	// J1:{Python, SQL}, J2:{Python, Spark}, J3:{SQL, Excel}:
	// raw degrees Python=2, SQL=2, Spark=1, Excel=1 over 4 nodes.
	g := buildGraph(t, []model.JobPosting{
		{ID: "J1", Skills: []string{"Python", "SQL"}},
		{ID: "J2", Skills: []string{"Python", "Spark"}},
		{ID: "J3", Skills: []string{"SQL", "Excel"}},
	}, analystSkills()...)

	scores, err := Compute(g, Config{})
	require.NoError(t, err)
	require.Len(t, scores, 4)

	assert.InDelta(t, 2.0/3.0, scores["Python"].Degree, 1e-12)
	assert.InDelta(t, 2.0/3.0, scores["SQL"].Degree, 1e-12)
	assert.InDelta(t, 1.0/3.0, scores["Spark"].Degree, 1e-12)
	assert.InDelta(t, 1.0/3.0, scores["Excel"].Degree, 1e-12)
}

func TestDegreeFollowsDemandRanking(t *testing.T) {
	g := buildGraph(t, []model.JobPosting{
		{ID: "J1", Skills: []string{"Python", "SQL", "Spark"}},
		{ID: "J2", Skills: []string{"Python", "SQL"}},
		{ID: "J3", Skills: []string{"Python", "Excel"}},
	}, analystSkills()...)

	scores, err := Compute(g, Config{})
	require.NoError(t, err)

	assert.Greater(t, scores["Python"].Degree, scores["Spark"].Degree)
	assert.GreaterOrEqual(t, scores["SQL"].Degree, scores["Spark"].Degree)
}

func TestBetweennessPathGraph(t *testing.T) {
	// Path A-B-C: all shortest paths between A and C pass through B.
	g := buildGraph(t, []model.JobPosting{
		{ID: "J1", Skills: []string{"Python", "SQL"}},
		{ID: "J2", Skills: []string{"SQL", "Excel"}},
	}, analystSkills()...)

	scores, err := Compute(g, Config{})
	require.NoError(t, err)

	// n=3: normalization divides by (n-1)(n-2)/2 = 1 pair.
	assert.InDelta(t, 1.0, scores["SQL"].Betweenness, 1e-12)
	assert.InDelta(t, 0.0, scores["Python"].Betweenness, 1e-12)
	assert.InDelta(t, 0.0, scores["Excel"].Betweenness, 1e-12)
}

func TestBetweennessSplitsTies(t *testing.T) {
	// Square Python-SQL-Excel-Spark-Python: the two paths between opposite
	// corners are tied, so each midpoint gets half the credit.
	g := buildGraph(t, []model.JobPosting{
		{ID: "J1", Skills: []string{"Python", "SQL"}},
		{ID: "J2", Skills: []string{"SQL", "Excel"}},
		{ID: "J3", Skills: []string{"Excel", "Spark"}},
		{ID: "J4", Skills: []string{"Spark", "Python"}},
	}, analystSkills()...)

	scores, err := Compute(g, Config{})
	require.NoError(t, err)

	// Each node sits on one of two tied shortest paths for exactly one pair:
	// 0.5 raw, normalized by (n-1)(n-2)/2 = 3 pairs.
	for _, skill := range []string{"Python", "SQL", "Excel", "Spark"} {
		assert.InDelta(t, 0.5/3.0, scores[skill].Betweenness, 1e-9, skill)
	}
}

func TestClosenessDisconnected(t *testing.T) {
	// Two components: Python-SQL and Excel-Spark. Reachable-fraction scaling:
	// C = ((r-1)/(n-1)) * ((r-1)/sum) = (1/3) * 1 for every node.
	g := buildGraph(t, []model.JobPosting{
		{ID: "J1", Skills: []string{"Python", "SQL"}},
		{ID: "J2", Skills: []string{"Excel", "Spark"}},
	}, analystSkills()...)

	scores, err := Compute(g, Config{})
	require.NoError(t, err)

	for _, skill := range []string{"Python", "SQL", "Excel", "Spark"} {
		assert.InDelta(t, 1.0/3.0, scores[skill].Closeness, 1e-12, skill)
	}
}

func TestWeightedDistances(t *testing.T) {
	// Python-SQL co-occur 3 times, SQL-Excel once. With inverse-weight
	// distances Python is 1/3 from SQL and 1/3+1 from Excel.
	g := buildGraph(t, []model.JobPosting{
		{ID: "J1", Skills: []string{"Python", "SQL"}},
		{ID: "J2", Skills: []string{"Python", "SQL"}},
		{ID: "J3", Skills: []string{"Python", "SQL"}},
		{ID: "J4", Skills: []string{"SQL", "Excel"}},
	}, analystSkills()...)

	scores, err := Compute(g, Config{Weighted: true})
	require.NoError(t, err)

	// sum of distances from Python: 1/3 + 4/3 = 5/3, n=3, r=2.
	assert.InDelta(t, (2.0/(5.0/3.0))*(2.0/2.0), scores["Python"].Closeness, 1e-9)
	assert.InDelta(t, 1.0, scores["SQL"].Betweenness, 1e-9)
	assert.Equal(t, 4.0, scores["SQL"].WeightedDegree)
}

func TestEigenvectorSymmetry(t *testing.T) {
	// Triangle with equal weights: eigenvector centrality is uniform 1/sqrt(3).
	g := buildGraph(t, []model.JobPosting{
		{ID: "J1", Skills: []string{"Python", "SQL", "Excel"}},
	}, analystSkills()...)

	scores, err := Compute(g, Config{})
	require.NoError(t, err)

	for _, skill := range []string{"Python", "SQL", "Excel"} {
		assert.InDelta(t, 0.5773502691896258, scores[skill].Eigenvector, 1e-6, skill)
	}
}

func TestEigenvectorWeighted(t *testing.T) {
	// Path Python-SQL-Excel with co-occurrence weights 3 and 1. Unweighted the
	// endpoints are symmetric; weighted, the dominant eigenvector of the
	// adjacency [[0,3,0],[3,0,1],[0,1,0]] is (3, sqrt(10), 1)/sqrt(20).
	postings := []model.JobPosting{
		{ID: "J1", Skills: []string{"Python", "SQL"}},
		{ID: "J2", Skills: []string{"Python", "SQL"}},
		{ID: "J3", Skills: []string{"Python", "SQL"}},
		{ID: "J4", Skills: []string{"SQL", "Excel"}},
	}

	plain, err := Compute(buildGraph(t, postings, analystSkills()...), Config{})
	require.NoError(t, err)
	assert.InDelta(t, plain["Python"].Eigenvector, plain["Excel"].Eigenvector, 1e-4)

	weighted, err := Compute(buildGraph(t, postings, analystSkills()...), Config{Weighted: true})
	require.NoError(t, err)
	assert.InDelta(t, 3.0/math.Sqrt(20), weighted["Python"].Eigenvector, 1e-4)
	assert.InDelta(t, math.Sqrt(10)/math.Sqrt(20), weighted["SQL"].Eigenvector, 1e-4)
	assert.InDelta(t, 1.0/math.Sqrt(20), weighted["Excel"].Eigenvector, 1e-4)
	assert.Greater(t, weighted["Python"].Eigenvector, weighted["Excel"].Eigenvector)
}

func TestEigenvectorConvergenceError(t *testing.T) {
	g := buildGraph(t, []model.JobPosting{
		{ID: "J1", Skills: []string{"Python", "SQL"}},
		{ID: "J2", Skills: []string{"SQL", "Excel"}},
		{ID: "J3", Skills: []string{"Excel", "Spark"}},
	}, analystSkills()...)

	scores, err := Compute(g, Config{MaxIterations: 1})
	var conv *model.ConvergenceError
	require.ErrorAs(t, err, &conv)
	assert.Equal(t, 1, conv.Iterations)

	// Other centralities stay available, eigenvector is zeroed.
	require.Len(t, scores, 4)
	assert.Greater(t, scores["SQL"].Betweenness, 0.0)
	assert.Equal(t, 0.0, scores["SQL"].Eigenvector)
}

func TestSingleNodeGraph(t *testing.T) {
	g := buildGraph(t, []model.JobPosting{
		{ID: "J1", Skills: []string{"Python"}},
	}, analystSkills()...)

	scores, err := Compute(g, Config{})
	require.NoError(t, err)
	require.Len(t, scores, 1)

	c := scores["Python"]
	assert.Equal(t, 0.0, c.Degree)
	assert.Equal(t, 0.0, c.Betweenness)
	assert.Equal(t, 0.0, c.Closeness)
	assert.Equal(t, 0.0, c.WeightedDegree)
}
