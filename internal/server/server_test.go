package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/skillgraph/internal/config"
	"github.com/agenthands/skillgraph/internal/core/model"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Taxonomy = []model.TaxonomySkill{
		{Name: "Python", Category: "programming"},
		{Name: "SQL", Category: "programming"},
		{Name: "Spark", Category: "bigdata"},
		{Name: "Excel", Category: "analytics"},
	}
	cfg.Clustering.K = 2

	srv, err := NewServer(cfg, nil)
	require.NoError(t, err)
	return srv.SetupRouter()
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func analyzeBody() map[string]any {
	return map[string]any{
		"jobs": []map[string]any{
			{"job_id": "J1", "title": "Data Engineer", "skills_detected": []string{"Python", "SQL"}},
			{"job_id": "J2", "title": "ML Engineer", "skills_detected": []string{"Python", "Spark"}},
			{"job_id": "J3", "title": "Analyst", "skills_detected": []string{"SQL", "Excel"}},
		},
		"user_skills": []string{"Python", "SQL"},
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, float64(4), resp["skills"])
}

func TestAnalyzeEndpoint(t *testing.T) {
	router := testRouter(t)

	w := postJSON(t, router, "/analyze", analyzeBody())
	require.Equal(t, http.StatusOK, w.Code)

	var report model.AnalysisReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 3, report.JobCount)
	assert.Equal(t, 4, report.SkillCount)
	assert.Len(t, report.Centralities, 4)
	assert.Len(t, report.Communities, 4)
	require.NotNil(t, report.MarketGap)
}

func TestAnalyzeExtractsFromDescription(t *testing.T) {
	router := testRouter(t)

	w := postJSON(t, router, "/analyze", map[string]any{
		"jobs": []map[string]any{
			{"job_id": "J1", "description": "We want Python and SQL experience."},
			{"job_id": "J2", "description": "Spark pipelines, Python services."},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var report model.AnalysisReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 2, report.JobCount)
	assert.Equal(t, 3, report.SkillCount)
}

func TestAnalyzeUnknownSkillRejected(t *testing.T) {
	router := testRouter(t)

	w := postJSON(t, router, "/analyze", map[string]any{
		"jobs": []map[string]any{
			{"job_id": "J1", "skills_detected": []string{"Cobol"}},
		},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "Cobol")
}

func TestAnalyzeMissingJobs(t *testing.T) {
	router := testRouter(t)

	w := postJSON(t, router, "/analyze", map[string]any{"user_skills": []string{"Python"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGapAgainstTargetJob(t *testing.T) {
	router := testRouter(t)

	body := analyzeBody()
	body["target_job_id"] = "J2"
	w := postJSON(t, router, "/gap", body)
	require.Equal(t, http.StatusOK, w.Code)

	var report model.GapReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))

	// User {Python, SQL} vs J2's {Python, Spark}.
	assert.InDelta(t, 0.5, report.MatchRatio, 1e-12)
	require.Len(t, report.MissingSkills, 1)
	assert.Equal(t, "Spark", report.MissingSkills[0].Skill)
}

func TestGapUnknownTargetJob(t *testing.T) {
	router := testRouter(t)

	body := analyzeBody()
	body["target_job_id"] = "J99"
	w := postJSON(t, router, "/gap", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "J99")
	assert.Contains(t, resp["error"], "not found")
}

func TestGapDefaultsToIdealProfile(t *testing.T) {
	router := testRouter(t)

	w := postJSON(t, router, "/gap", analyzeBody())
	require.Equal(t, http.StatusOK, w.Code)

	var report model.GapReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	// All four market skills form the ideal profile; the user holds two.
	assert.InDelta(t, 0.5, report.MatchRatio, 1e-12)
}

func TestExtractEndpoint(t *testing.T) {
	router := testRouter(t)

	w := postJSON(t, router, "/extract", map[string]any{
		"text": "Strong Python, some Excel. Pythonic style is a plus.",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Excel", "Python"}, resp["skills"])
}
