// Package graph builds the job–skill bipartite graph and its skill
// co-occurrence projection from extracted skill mentions.
package graph

import (
	"sort"

	"github.com/agenthands/skillgraph/internal/core/model"
)

// Bipartite is the job↔skill graph. Edges only connect a job to a skill;
// the structure is read-only after Build returns.
type Bipartite struct {
	jobSkills  map[string]map[string]struct{} // job id -> skill set
	skillJobs  map[string]map[string]struct{} // skill -> job set
	jobOrder   []string                       // jobs in input order, deduplicated
	jobMeta    map[string]model.JobPosting
}

// BuildBipartite constructs the bipartite graph from postings. Skill mentions
// are resolved against the taxonomy, so differently-cased mentions of the same
// skill collapse to one node. An empty or unknown skill id fails with
// *model.ValidationError. Rebuilding from a permuted posting order yields the
// same edge set.
func BuildBipartite(postings []model.JobPosting, taxonomy *model.Taxonomy) (*Bipartite, error) {
	b := &Bipartite{
		jobSkills: make(map[string]map[string]struct{}, len(postings)),
		skillJobs: make(map[string]map[string]struct{}),
		jobMeta:   make(map[string]model.JobPosting, len(postings)),
	}

	for _, p := range postings {
		if p.ID == "" {
			return nil, &model.ValidationError{Reason: "job id is empty"}
		}
		if _, seen := b.jobSkills[p.ID]; !seen {
			b.jobSkills[p.ID] = make(map[string]struct{}, len(p.Skills))
			b.jobOrder = append(b.jobOrder, p.ID)
			b.jobMeta[p.ID] = p
		}
		for _, raw := range p.Skills {
			if model.NormalizeSkill(raw) == "" {
				return nil, &model.ValidationError{JobID: p.ID, Skill: raw, Reason: "skill id is empty"}
			}
			name, ok := taxonomy.Canonical(raw)
			if !ok {
				return nil, &model.ValidationError{JobID: p.ID, Skill: raw, Reason: "not in taxonomy"}
			}
			b.jobSkills[p.ID][name] = struct{}{}
			if b.skillJobs[name] == nil {
				b.skillJobs[name] = make(map[string]struct{})
			}
			b.skillJobs[name][p.ID] = struct{}{}
		}
	}

	return b, nil
}

// Jobs returns job ids in input order.
func (b *Bipartite) Jobs() []string {
	return b.jobOrder
}

// Posting returns the posting metadata carried through for a job id.
func (b *Bipartite) Posting(jobID string) (model.JobPosting, bool) {
	p, ok := b.jobMeta[jobID]
	return p, ok
}

// Skills returns all skill nodes, sorted.
func (b *Bipartite) Skills() []string {
	out := make([]string, 0, len(b.skillJobs))
	for s := range b.skillJobs {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// JobSkills returns the sorted skill set of a job.
func (b *Bipartite) JobSkills(jobID string) []string {
	set := b.jobSkills[jobID]
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// HasEdge reports whether the (job, skill) edge exists.
func (b *Bipartite) HasEdge(jobID, skill string) bool {
	_, ok := b.jobSkills[jobID][skill]
	return ok
}

// SkillDegree is the number of distinct jobs mentioning the skill — the
// skill's market demand frequency.
func (b *Bipartite) SkillDegree(skill string) int {
	return len(b.skillJobs[skill])
}

// SkillFrequencies returns the demand table sorted by count descending, ties
// broken alphabetically.
func (b *Bipartite) SkillFrequencies() []model.SkillFrequency {
	out := make([]model.SkillFrequency, 0, len(b.skillJobs))
	for s, jobs := range b.skillJobs {
		out = append(out, model.SkillFrequency{Skill: s, Count: len(jobs)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Skill < out[j].Skill
	})
	return out
}

// TopSkills returns the n most demanded skills.
func (b *Bipartite) TopSkills(n int) []string {
	freq := b.SkillFrequencies()
	if n > len(freq) {
		n = len(freq)
	}
	out := make([]string, 0, n)
	for _, f := range freq[:n] {
		out = append(out, f.Skill)
	}
	return out
}

// JobCount returns the number of job nodes.
func (b *Bipartite) JobCount() int { return len(b.jobSkills) }

// SkillCount returns the number of skill nodes.
func (b *Bipartite) SkillCount() int { return len(b.skillJobs) }
