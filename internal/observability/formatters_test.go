package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LAWSA07/ProFel/internal/types"
)

func TestPrintMatchResult(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintMatchResult(&types.MatchResult{
		ProfileName:  "Grace Hopper",
		JobTitle:     "Backend Engineer",
		Company:      "Acme",
		OverallMatch: 85,
		SkillMatches: []types.SkillMatch{
			{SkillName: "python", JobImportance: 1.0, CandidateLevel: 1.0, MatchScore: 1.0},
			{SkillName: "sql", JobImportance: 0.7, CandidateLevel: 0.7, MatchScore: 0.49},
		},
		MissingSkills:  []string{"kubernetes"},
		Strengths:      []string{"python"},
		Recommendation: "Excellent match! Strong candidate for this position.",
	})

	out := buf.String()
	assert.Contains(t, out, "MATCH RESULT")
	assert.Contains(t, out, "Grace Hopper")
	assert.Contains(t, out, "Backend Engineer @ Acme")
	assert.Contains(t, out, "85%")
	assert.Contains(t, out, "python")
	assert.Contains(t, out, "kubernetes")
	assert.Contains(t, out, "Excellent match!")
}

func TestPrintMatchResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatchResult(nil)
	assert.Empty(t, buf.String())
}

func TestPrintMatchResult_TruncatesSkillList(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	matches := make([]types.SkillMatch, 8)
	for i := range matches {
		matches[i] = types.SkillMatch{SkillName: "skill", JobImportance: 0.5, MatchScore: 0.5}
	}
	printer.PrintMatchResult(&types.MatchResult{
		ProfileName:  "Grace",
		JobTitle:     "Engineer",
		Company:      "Acme",
		SkillMatches: matches,
	})

	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintMatchScore(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintMatchScore(&types.MatchScore{
		ProfileName:      "Grace Hopper",
		OverallScore:     0.72,
		SkillMatch:       0.8,
		VectorSimilarity: 0.6,
		SkillsMatched:    []string{"python", "sql"},
		SkillsMissing:    []string{"go"},
		PlatformContributions: map[string]float64{
			"github":   0.36,
			"leetcode": 0.22,
		},
	})

	out := buf.String()
	assert.Contains(t, out, "COMBINED SCORE")
	assert.Contains(t, out, "0.72")
	assert.Contains(t, out, "python, sql")
	// Contributions are listed alphabetically.
	githubIdx := strings.Index(out, "github")
	leetcodeIdx := strings.Index(out, "leetcode")
	assert.True(t, githubIdx >= 0 && leetcodeIdx > githubIdx)
}

func TestPrintMatchScore_Error(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintMatchScore(&types.MatchScore{
		OverallScore: 0.5,
		Error:        "No job requirements found",
	})
	assert.Contains(t, buf.String(), "No job requirements found")
}

func TestPrintProfileMatches(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintProfileMatches(&types.ProfileMatches{
		ProfileName: "Grace Hopper",
		Matches: []types.RankedMatch{
			{JobTitle: "Backend Engineer", Company: "Acme", OverallMatch: 90},
			{JobTitle: "Data Engineer", Company: "Initech", OverallMatch: 60},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "RANKED MATCHES")
	assert.Contains(t, out, "#1  Backend Engineer @ Acme")
	assert.Contains(t, out, "#2  Data Engineer @ Initech")
	assert.Contains(t, out, "90%")
}

func TestPrintProfileMatches_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProfileMatches(&types.ProfileMatches{ProfileName: "Grace"})
	assert.Empty(t, buf.String())
}

func TestPrintCombinedProfile(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintCombinedProfile(&types.CombinedProfile{
		Name:      "combined_ghopper",
		Platforms: []string{"github", "linkedin"},
		Skills: []types.Skill{
			{Name: "Python", Weight: 1.0},
			{Name: "SQL", Weight: 0.7},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "COMBINED PROFILE")
	assert.Contains(t, out, "combined_ghopper")
	assert.Contains(t, out, "github, linkedin")
	assert.Contains(t, out, "Python (1.0)")
}

func TestPrintJob(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintJob(&types.Job{
		Title:    "Backend Engineer",
		Company:  "Acme",
		Location: "Remote",
		Requirements: []types.Skill{
			{Name: "Go", Weight: 1.0},
			{Name: "PostgreSQL", Weight: 0.8},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "JOB POSTING")
	assert.Contains(t, out, "Backend Engineer")
	assert.Contains(t, out, "Remote")
	assert.Contains(t, out, "Go (1.0)")
	assert.Contains(t, out, "PostgreSQL (0.8)")
}
