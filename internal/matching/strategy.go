package matching

import (
	"github.com/LAWSA07/ProFel/internal/skills"
	"github.com/LAWSA07/ProFel/internal/types"
)

// ScoringStrategy scores candidate skills against job skills on a 0-1 scale.
// Two strategies exist: the weighted per-requirement matcher used for
// detailed results, and a plain set-overlap used as a cheap path for
// combined scores.
type ScoringStrategy interface {
	Name() string
	Score(candidateSkills, jobSkills []types.Skill) float64
}

// WeightedStrategy scores through the full per-requirement matcher.
type WeightedStrategy struct {
	Config Config
}

// Name implements ScoringStrategy.
func (WeightedStrategy) Name() string { return "weighted" }

// Score implements ScoringStrategy.
func (s WeightedStrategy) Score(candidateSkills, jobSkills []types.Skill) float64 {
	return Match(candidateSkills, jobSkills, s.Config).OverallMatch / 100
}

// SetOverlapStrategy scores by plain normalized-set intersection over the job
// skill set.
type SetOverlapStrategy struct{}

// Name implements ScoringStrategy.
func (SetOverlapStrategy) Name() string { return "set_overlap" }

// Score implements ScoringStrategy.
func (SetOverlapStrategy) Score(candidateSkills, jobSkills []types.Skill) float64 {
	_, _, pct := Overlap(candidateSkills, jobSkills)
	return pct
}

// Overlap computes the normalized-set intersection between candidate and job
// skills. Returns the matched and missing job skill names (original literal
// names, job input order) and the matched fraction of the job skill set.
func Overlap(candidateSkills, jobSkills []types.Skill) (matched, missing []string, pct float64) {
	matched = []string{}
	missing = []string{}

	candidateSet := make(map[string]bool, len(candidateSkills))
	for _, skill := range candidateSkills {
		if key := skills.Normalize(skill.Name); key != "" {
			candidateSet[key] = true
		}
	}

	jobSeen := make(map[string]bool, len(jobSkills))
	for _, skill := range jobSkills {
		key := skills.Normalize(skill.Name)
		if key == "" || jobSeen[key] {
			continue
		}
		jobSeen[key] = true
		if candidateSet[key] {
			matched = append(matched, skill.Name)
		} else {
			missing = append(missing, skill.Name)
		}
	}

	if len(jobSeen) > 0 {
		pct = float64(len(matched)) / float64(len(jobSeen))
	}
	return matched, missing, pct
}
