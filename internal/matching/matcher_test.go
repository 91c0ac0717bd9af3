package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LAWSA07/ProFel/internal/types"
)

func TestMatch_ExactFullCredit(t *testing.T) {
	candidate := []types.Skill{
		{Name: "Python", Weight: 1.0},
		{Name: "Docker", Weight: 1.0},
	}
	job := []types.Skill{
		{Name: "Python", Weight: 0.9},
		{Name: "Docker", Weight: 0.5},
	}

	outcome := Match(candidate, job, DefaultConfig())

	assert.InDelta(t, 100, outcome.OverallMatch, 1e-9)
	assert.Empty(t, outcome.MissingSkills)
	require.Len(t, outcome.SkillMatches, 2)
	assert.InDelta(t, 0.9, outcome.SkillMatches[0].MatchScore, 1e-9)
	assert.InDelta(t, 0.5, outcome.SkillMatches[1].MatchScore, 1e-9)
}

func TestMatch_WeightedPartialLevel(t *testing.T) {
	// Intermediate React (0.7) against a requirement of importance 1.0
	// yields match_score 0.7 and an overall match of 70.
	candidate := []types.Skill{{Name: "React", Weight: 0.7}}
	job := []types.Skill{{Name: "React", Weight: 1.0}}

	outcome := Match(candidate, job, DefaultConfig())

	require.Len(t, outcome.SkillMatches, 1)
	assert.InDelta(t, 0.7, outcome.SkillMatches[0].CandidateLevel, 1e-9)
	assert.InDelta(t, 0.7, outcome.SkillMatches[0].MatchScore, 1e-9)
	assert.InDelta(t, 70, outcome.OverallMatch, 1e-9)
}

func TestMatch_MissingSkill(t *testing.T) {
	candidate := []types.Skill{{Name: "Python", Weight: 1.0}}
	job := []types.Skill{
		{Name: "Python", Weight: 0.9},
		{Name: "Kubernetes", Weight: 0.6},
	}

	outcome := Match(candidate, job, DefaultConfig())

	assert.Equal(t, []string{"Kubernetes"}, outcome.MissingSkills)
	require.Len(t, outcome.SkillMatches, 2)
	assert.InDelta(t, 0, outcome.SkillMatches[1].MatchScore, 1e-9)
	// 0.9 / 1.5 = 0.6 -> 60
	assert.InDelta(t, 60, outcome.OverallMatch, 1e-9)
}

func TestMatch_NormalizedEquivalence(t *testing.T) {
	candidate := []types.Skill{{Name: "JS", Weight: 1.0}}
	job := []types.Skill{{Name: "JavaScript", Weight: 1.0}}

	outcome := Match(candidate, job, DefaultConfig())

	assert.InDelta(t, 100, outcome.OverallMatch, 1e-9)
	assert.Empty(t, outcome.MissingSkills)
}

func TestMatch_SubstringContainment(t *testing.T) {
	// "machine learning" contains "machine learning engineering"? No -
	// containment runs both directions, so the shorter key matching inside
	// the longer one counts as a full match.
	candidate := []types.Skill{{Name: "machine learning engineering", Weight: 0.7}}
	job := []types.Skill{{Name: "machine learning", Weight: 1.0}}

	outcome := Match(candidate, job, DefaultConfig())

	require.Len(t, outcome.SkillMatches, 1)
	// substring matches score as a full level regardless of the
	// candidate's own weight
	assert.InDelta(t, 1.0, outcome.SkillMatches[0].CandidateLevel, 1e-9)
	assert.InDelta(t, 100, outcome.OverallMatch, 1e-9)
}

func TestMatch_TokenOverlapThreshold(t *testing.T) {
	cfg := DefaultConfig()

	// 1 shared token out of max(2, 2) = 0.5 < 0.7: no match.
	outcome := Match(
		[]types.Skill{{Name: "data analysis", Weight: 1.0}},
		[]types.Skill{{Name: "data science", Weight: 1.0}},
		cfg,
	)
	assert.Equal(t, []string{"data science"}, outcome.MissingSkills)

	// Lowering the threshold accepts the same pair.
	cfg.Threshold = 0.5
	outcome = Match(
		[]types.Skill{{Name: "data analysis", Weight: 1.0}},
		[]types.Skill{{Name: "data science", Weight: 1.0}},
		cfg,
	)
	assert.Empty(t, outcome.MissingSkills)
	assert.InDelta(t, 0.5, outcome.SkillMatches[0].CandidateLevel, 1e-9)
}

func TestMatch_EmptyInputs(t *testing.T) {
	job := []types.Skill{{Name: "Go", Weight: 1.0}, {Name: "SQL", Weight: 0.5}}

	outcome := Match(nil, job, DefaultConfig())
	assert.InDelta(t, 0, outcome.OverallMatch, 1e-9)
	assert.Equal(t, []string{"Go", "SQL"}, outcome.MissingSkills)
	assert.Empty(t, outcome.SkillMatches)

	outcome = Match([]types.Skill{{Name: "Go", Weight: 1.0}}, nil, DefaultConfig())
	assert.InDelta(t, 0, outcome.OverallMatch, 1e-9)
	assert.Empty(t, outcome.MissingSkills)
}

func TestMatch_DuplicateRequirementsScoredIndependently(t *testing.T) {
	candidate := []types.Skill{{Name: "Python", Weight: 1.0}}
	job := []types.Skill{
		{Name: "Python", Weight: 1.0},
		{Name: "python", Weight: 0.5},
	}

	outcome := Match(candidate, job, DefaultConfig())

	require.Len(t, outcome.SkillMatches, 2)
	assert.InDelta(t, 1.0, outcome.SkillMatches[0].MatchScore, 1e-9)
	assert.InDelta(t, 0.5, outcome.SkillMatches[1].MatchScore, 1e-9)
	assert.InDelta(t, 100, outcome.OverallMatch, 1e-9)
}

func TestMatch_Deterministic(t *testing.T) {
	candidate := []types.Skill{
		{Name: "Python", Weight: 1.0},
		{Name: "Go", Weight: 0.7},
		{Name: "Docker", Weight: 0.4},
	}
	job := []types.Skill{
		{Name: "Go", Weight: 0.8},
		{Name: "Terraform", Weight: 0.6},
	}

	first := Match(candidate, job, DefaultConfig())
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Match(candidate, job, DefaultConfig()))
	}
}

func TestMatch_FirstCandidateWinsExactTie(t *testing.T) {
	// Two candidate entries normalize to the same key; the first one's
	// weight is the one scored.
	candidate := []types.Skill{
		{Name: "JS", Weight: 0.4},
		{Name: "JavaScript", Weight: 1.0},
	}
	job := []types.Skill{{Name: "javascript", Weight: 1.0}}

	outcome := Match(candidate, job, DefaultConfig())

	require.Len(t, outcome.SkillMatches, 1)
	assert.InDelta(t, 0.4, outcome.SkillMatches[0].CandidateLevel, 1e-9)
}

func TestMatch_OverallRounding(t *testing.T) {
	// 0.7*0.9 / (0.9 + 0.3) = 0.525 -> 53 after rounding.
	candidate := []types.Skill{{Name: "React", Weight: 0.7}}
	job := []types.Skill{
		{Name: "React", Weight: 0.9},
		{Name: "GraphQL", Weight: 0.3},
	}

	outcome := Match(candidate, job, DefaultConfig())
	assert.InDelta(t, 53, outcome.OverallMatch, 1e-9)
}

func TestStrengths_ImportanceWeighted(t *testing.T) {
	candidate := []types.Skill{
		{Name: "Python", Weight: 1.0}, // 0.9 >= 0.7*0.9: strength
		{Name: "React", Weight: 0.4},  // 0.4*0.8=0.32 < 0.7*0.8: not a strength
	}
	job := []types.Skill{
		{Name: "Python", Weight: 0.9},
		{Name: "React", Weight: 0.8},
	}

	outcome := Match(candidate, job, DefaultConfig())
	assert.Equal(t, []string{"Python"}, outcome.Strengths)
}

func TestStrengths_HighBar(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StrengthPolicy = StrengthHighBar

	candidate := []types.Skill{
		{Name: "Python", Weight: 1.0}, // importance 0.9 >= 0.7, score 0.9 >= 0.8
		{Name: "Docker", Weight: 1.0}, // importance 0.6 < 0.7: excluded
		{Name: "React", Weight: 0.7},  // score 0.63 < 0.8: excluded
	}
	job := []types.Skill{
		{Name: "Python", Weight: 0.9},
		{Name: "Docker", Weight: 0.6},
		{Name: "React", Weight: 0.9},
	}

	outcome := Match(candidate, job, cfg)
	assert.Equal(t, []string{"Python"}, outcome.Strengths)
}

func TestStrengthPolicy_Valid(t *testing.T) {
	assert.True(t, StrengthImportanceWeighted.Valid())
	assert.True(t, StrengthHighBar.Valid())
	assert.False(t, StrengthPolicy("strict").Valid())
	assert.False(t, StrengthPolicy("").Valid())
}
