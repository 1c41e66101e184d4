package model

// CentralityScores maps a skill to its centrality measures over the
// co-occurrence graph. Degree, Betweenness, Closeness and Eigenvector follow
// the normalizations documented on the centrality package; WeightedDegree is
// the raw sum of incident co-occurrence weights.
type CentralityScores map[string]Centrality

type Centrality struct {
	Degree         float64 `json:"degree"`
	Betweenness    float64 `json:"betweenness"`
	Closeness      float64 `json:"closeness"`
	Eigenvector    float64 `json:"eigenvector"`
	WeightedDegree float64 `json:"weighted_degree"`
}

// CommunityAssignment maps each skill to an opaque community label. With a
// fixed seed the mapping is reproducible bit-for-bit; labels themselves carry
// no meaning beyond grouping.
type CommunityAssignment map[string]int

// ClusterAssignment maps each job id to a cluster label in [0, k).
type ClusterAssignment map[string]int

// ClusterResult is the outcome of job clustering: assignments plus the final
// centroids (in standardized feature space) for interpretation.
type ClusterResult struct {
	Assignment ClusterAssignment `json:"assignment"`
	Centroids  [][]float64       `json:"centroids"`
	Inertia    float64           `json:"inertia"`
}

// MissingSkill is one skill the user lacks, with its market demand and the
// priority used for ordering.
type MissingSkill struct {
	Skill    string  `json:"skill"`
	Category string  `json:"category,omitempty"`
	Count    int     `json:"count"`
	Priority float64 `json:"priority"`
}

// GapReport compares the user's skills against one target skill set.
type GapReport struct {
	MatchRatio    float64        `json:"match_ratio"`
	MatchedSkills []string       `json:"matched_skills"`
	MissingSkills []MissingSkill `json:"missing_skills"`
}

// JobGapRow is the per-posting gap annotation: how many of the job's skills
// the user already has.
type JobGapRow struct {
	JobID      string  `json:"job_id"`
	Title      string  `json:"title,omitempty"`
	SkillCount int     `json:"n_skills_job"`
	UserHas    int     `json:"n_skills_user_has"`
	MatchRatio float64 `json:"match_ratio"`
}

// SkillFrequency is one row of the market demand table.
type SkillFrequency struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// BridgeSkill is a skill with high betweenness, connecting otherwise separate
// skill communities.
type BridgeSkill struct {
	Skill       string  `json:"skill"`
	Betweenness float64 `json:"betweenness"`
	Degree      float64 `json:"degree"`
}

// AnalysisReport is the full output of one analysis run over a posting snapshot.
type AnalysisReport struct {
	RunID          string              `json:"run_id"`
	JobCount       int                 `json:"job_count"`
	SkillCount     int                 `json:"skill_count"`
	Centralities   CentralityScores    `json:"centralities,omitempty"`
	CentralityNote string              `json:"centrality_note,omitempty"`
	Communities    CommunityAssignment `json:"communities,omitempty"`
	Modularity     float64             `json:"modularity"`
	Clusters       *ClusterResult      `json:"clusters,omitempty"`
	ClusterNote    string              `json:"cluster_note,omitempty"`
	BridgeSkills   []BridgeSkill       `json:"bridge_skills,omitempty"`
	TopSkills      []SkillFrequency    `json:"top_skills,omitempty"`
	JobGaps        []JobGapRow         `json:"job_gaps,omitempty"`
	MarketGap      *GapReport          `json:"market_gap,omitempty"`
}
