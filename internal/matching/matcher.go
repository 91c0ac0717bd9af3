// Package matching computes skill-overlap match scores between candidate
// skills and weighted job requirements.
package matching

import (
	"math"
	"strings"

	"github.com/LAWSA07/ProFel/internal/skills"
	"github.com/LAWSA07/ProFel/internal/types"
)

// DefaultThreshold is the minimum token-overlap similarity accepted as a
// partial match.
const DefaultThreshold = 0.7

// Config controls matcher behavior.
type Config struct {
	// Threshold is the minimum token-overlap similarity for a partial match.
	Threshold float64
	// StrengthPolicy selects how strengths are identified.
	StrengthPolicy StrengthPolicy
}

// DefaultConfig returns the matcher defaults.
func DefaultConfig() Config {
	return Config{
		Threshold:      DefaultThreshold,
		StrengthPolicy: StrengthImportanceWeighted,
	}
}

// normalizedSkill pairs a skill with its normalized matching key.
type normalizedSkill struct {
	skill types.Skill
	key   string
}

// Match scores candidate skills against weighted job requirements.
//
// Each requirement is matched exactly by normalized name first, then by
// token-overlap similarity against every candidate, with substring
// containment accepted as a full match regardless of the numeric threshold.
// Duplicate requirements with the same normalized name are scored
// independently, and one candidate skill may satisfy several requirements.
// Ties on similarity go to the first candidate in input order, which keeps
// the output deterministic for identical inputs.
func Match(candidateSkills, jobSkills []types.Skill, cfg Config) types.MatchOutcome {
	if cfg.Threshold <= 0 {
		cfg.Threshold = DefaultThreshold
	}

	outcome := types.MatchOutcome{
		SkillMatches:  []types.SkillMatch{},
		MissingSkills: []string{},
		Strengths:     []string{},
	}

	if len(candidateSkills) == 0 || len(jobSkills) == 0 {
		for _, job := range jobSkills {
			outcome.MissingSkills = append(outcome.MissingSkills, job.Name)
		}
		return outcome
	}

	candidates := make([]normalizedSkill, 0, len(candidateSkills))
	lookup := make(map[string]types.Skill, len(candidateSkills))
	for _, skill := range candidateSkills {
		key := skills.Normalize(skill.Name)
		if key == "" {
			continue
		}
		candidates = append(candidates, normalizedSkill{skill: skill, key: key})
		if _, exists := lookup[key]; !exists {
			lookup[key] = skill
		}
	}

	totalImportance := 0.0
	for _, job := range jobSkills {
		totalImportance += types.ClampWeight(job.Weight)
	}

	currentScore := 0.0
	for _, job := range jobSkills {
		importance := types.ClampWeight(job.Weight)
		jobKey := skills.Normalize(job.Name)

		achieved := 0.0
		matched := false

		if jobKey != "" {
			if candidate, ok := lookup[jobKey]; ok {
				achieved = types.ClampWeight(candidate.Weight)
				matched = true
			} else {
				achieved, matched = bestPartialMatch(jobKey, candidates, cfg.Threshold)
			}
		}

		record := types.SkillMatch{
			SkillName:     job.Name,
			JobImportance: importance,
		}
		if matched {
			record.CandidateLevel = achieved
			record.MatchScore = importance * achieved
			currentScore += record.MatchScore
		} else {
			outcome.MissingSkills = append(outcome.MissingSkills, job.Name)
		}
		outcome.SkillMatches = append(outcome.SkillMatches, record)
	}

	if totalImportance > 0 {
		outcome.OverallMatch = math.Round(currentScore / totalImportance * 100)
	}

	outcome.Strengths = strengths(outcome.SkillMatches, cfg.StrengthPolicy)

	return outcome
}

// bestPartialMatch scans candidates in input order for the best fallback
// match against a normalized job skill. Substring containment short-circuits
// as a full match; otherwise the highest token-overlap similarity wins,
// subject to the threshold. First candidate wins ties.
func bestPartialMatch(jobKey string, candidates []normalizedSkill, threshold float64) (float64, bool) {
	bestSimilarity := 0.0

	for _, candidate := range candidates {
		if strings.Contains(candidate.key, jobKey) || strings.Contains(jobKey, candidate.key) {
			return 1.0, true
		}
		if similarity := tokenSimilarity(jobKey, candidate.key); similarity > bestSimilarity {
			bestSimilarity = similarity
		}
	}

	if bestSimilarity >= threshold {
		return bestSimilarity, true
	}
	return 0, false
}

// tokenSimilarity is shared-token overlap normalized by the larger token set.
func tokenSimilarity(a, b string) float64 {
	aTokens := strings.Fields(a)
	bTokens := strings.Fields(b)
	if len(aTokens) == 0 || len(bTokens) == 0 {
		return 0
	}

	aSet := make(map[string]bool, len(aTokens))
	for _, token := range aTokens {
		aSet[token] = true
	}
	bSet := make(map[string]bool, len(bTokens))
	shared := 0
	for _, token := range bTokens {
		if bSet[token] {
			continue
		}
		bSet[token] = true
		if aSet[token] {
			shared++
		}
	}

	maxTokens := len(aSet)
	if len(bSet) > maxTokens {
		maxTokens = len(bSet)
	}
	return float64(shared) / float64(maxTokens)
}
