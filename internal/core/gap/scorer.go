// Package gap compares a user's declared skills against per-job and aggregate
// market skill sets.
package gap

import (
	"sort"

	"github.com/agenthands/skillgraph/internal/core/graph"
	"github.com/agenthands/skillgraph/internal/core/model"
)

// Scorer ranks missing skills by market demand. Centralities are optional:
// when present, a missing skill's priority is its demand count scaled by
// (1 + betweenness), so bridging skills rank higher at equal demand.
type Scorer struct {
	Frequencies  map[string]int
	Centralities model.CentralityScores
	Taxonomy     *model.Taxonomy
}

// NewScorer builds a scorer from the bipartite graph's demand frequencies.
func NewScorer(b *graph.Bipartite, taxonomy *model.Taxonomy) *Scorer {
	freq := make(map[string]int, b.SkillCount())
	for _, f := range b.SkillFrequencies() {
		freq[f.Skill] = f.Count
	}
	return &Scorer{Frequencies: freq, Taxonomy: taxonomy}
}

// Score compares the user's skill set against one target skill set (a single
// job's skills or an aggregate ideal profile). Both inputs are canonical
// skill names.
//
// Match ratio = |user ∩ target| / |target|. Conventions: 1.0 when both sets
// are empty, 0 when only the target is empty. Missing skills are sorted by
// priority descending, ties alphabetically.
func (s *Scorer) Score(userSkills, targetSkills []string) model.GapReport {
	user := toSet(userSkills)
	target := toSet(targetSkills)

	report := model.GapReport{}
	if len(target) == 0 {
		if len(user) == 0 {
			report.MatchRatio = 1.0
		}
		return report
	}

	for skill := range target {
		if user[skill] {
			report.MatchedSkills = append(report.MatchedSkills, skill)
			continue
		}
		ms := model.MissingSkill{
			Skill: skill,
			Count: s.Frequencies[skill],
		}
		ms.Priority = float64(ms.Count)
		if c, ok := s.Centralities[skill]; ok {
			ms.Priority *= 1 + c.Betweenness
		}
		if s.Taxonomy != nil {
			ms.Category = s.Taxonomy.Category(skill)
		}
		report.MissingSkills = append(report.MissingSkills, ms)
	}

	report.MatchRatio = float64(len(report.MatchedSkills)) / float64(len(target))
	sort.Strings(report.MatchedSkills)
	sort.Slice(report.MissingSkills, func(i, j int) bool {
		a, b := report.MissingSkills[i], report.MissingSkills[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return a.Skill < b.Skill
	})
	return report
}

// JobRows annotates every posting with how many of its skills the user holds,
// sorted by match ratio descending (ties by job id) for presentation.
func (s *Scorer) JobRows(b *graph.Bipartite, userSkills []string) []model.JobGapRow {
	user := toSet(userSkills)

	rows := make([]model.JobGapRow, 0, b.JobCount())
	for _, jobID := range b.Jobs() {
		skills := b.JobSkills(jobID)
		row := model.JobGapRow{JobID: jobID, SkillCount: len(skills)}
		if p, ok := b.Posting(jobID); ok {
			row.Title = p.Title
		}
		for _, skill := range skills {
			if user[skill] {
				row.UserHas++
			}
		}
		if row.SkillCount > 0 {
			row.MatchRatio = float64(row.UserHas) / float64(row.SkillCount)
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].MatchRatio != rows[j].MatchRatio {
			return rows[i].MatchRatio > rows[j].MatchRatio
		}
		return rows[i].JobID < rows[j].JobID
	})
	return rows
}

// MarketGap scores the user against the ideal profile: the topN most demanded
// skills in the snapshot.
func (s *Scorer) MarketGap(b *graph.Bipartite, userSkills []string, topN int) model.GapReport {
	return s.Score(userSkills, b.TopSkills(topN))
}

func toSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		if s != "" {
			set[s] = true
		}
	}
	return set
}
