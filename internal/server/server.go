package server

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agenthands/skillgraph/internal/config"
	"github.com/agenthands/skillgraph/internal/core"
	"github.com/agenthands/skillgraph/internal/core/model"
	"github.com/agenthands/skillgraph/internal/driver"
	"github.com/agenthands/skillgraph/internal/extract"
)

type Server struct {
	Engine  *core.Engine
	Matcher *extract.PhraseMatcher
	Log     *zap.Logger
}

// NewServer builds the engine from config. When MEMGRAPH_URI (or the config's
// memgraph.uri) is set, analysis snapshots are persisted; otherwise the engine
// runs in memory only.
func NewServer(cfg *config.Config, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}

	uri := os.Getenv("MEMGRAPH_URI")
	if uri == "" {
		uri = cfg.Memgraph.URI
	}

	var store *driver.SnapshotStore
	if uri != "" {
		user := os.Getenv("MEMGRAPH_USER")
		if user == "" {
			user = cfg.Memgraph.User
		}
		pass := os.Getenv("MEMGRAPH_PASSWORD")
		if pass == "" {
			pass = cfg.Memgraph.Password
		}
		d, err := driver.NewMemgraphDriver(uri, user, pass, log)
		if err != nil {
			return nil, err
		}
		store = driver.NewSnapshotStore(d, log)
	}

	engine := core.NewEngine(cfg, store, log)
	return &Server{
		Engine:  engine,
		Matcher: extract.NewPhraseMatcher(engine.Taxonomy),
		Log:     log,
	}, nil
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/health", s.Health)
	r.POST("/analyze", s.Analyze)
	r.POST("/gap", s.Gap)
	r.POST("/extract", s.Extract)

	return r
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "skills": s.Engine.Taxonomy.Len()})
}

type AnalyzeRequest struct {
	Jobs       []model.JobPosting `json:"jobs" binding:"required"`
	UserSkills []string           `json:"user_skills"`
}

func (s *Server) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	// Fill skills from raw text for postings the extraction adapter has not
	// processed yet.
	for i := range req.Jobs {
		if len(req.Jobs[i].Skills) == 0 && req.Jobs[i].Description != "" {
			req.Jobs[i].Skills = s.Matcher.Extract(req.Jobs[i].Description)
		}
	}

	report, err := s.Engine.Analyze(c.Request.Context(), req.Jobs, model.UserProfile{Skills: req.UserSkills})
	if err != nil {
		var validation *model.ValidationError
		if errors.As(err, &validation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
			return
		}
		s.Log.Error("analysis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze postings"})
		return
	}

	c.JSON(http.StatusOK, report)
}

type GapRequest struct {
	Jobs         []model.JobPosting `json:"jobs" binding:"required"`
	UserSkills   []string           `json:"user_skills"`
	TargetJobID  string             `json:"target_job_id"`
	TargetSkills []string           `json:"target_skills"`
}

// Gap scores the user against one target: an explicit skill list, one job of
// the snapshot, or (neither given) the aggregate ideal profile.
func (s *Server) Gap(c *gin.Context) {
	var req GapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	b, _, err := s.Engine.BuildGraphs(req.Jobs)
	if err != nil {
		var validation *model.ValidationError
		if errors.As(err, &validation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
			return
		}
		s.Log.Error("graph construction failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build graphs"})
		return
	}

	target := req.TargetSkills
	if req.TargetJobID != "" {
		target = b.JobSkills(req.TargetJobID)
		if len(target) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("job %q not found in snapshot or has no skills", req.TargetJobID)})
			return
		}
	}
	if len(target) == 0 && req.TargetJobID == "" && req.TargetSkills == nil {
		target = b.TopSkills(s.Engine.Config.Analysis.TopN)
	}

	report := s.Engine.ComputeGap(b, model.UserProfile{Skills: req.UserSkills}, target)
	c.JSON(http.StatusOK, report)
}

type ExtractRequest struct {
	Text string `json:"text" binding:"required"`
}

func (s *Server) Extract(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"skills": s.Matcher.Extract(req.Text)})
}
