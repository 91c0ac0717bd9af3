package jobs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LAWSA07/ProFel/internal/types"
)

func TestSplitSkills(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "commas", input: "Python, Go, SQL", expected: []string{"Python", "Go", "SQL"}},
		{name: "semicolons", input: "Python; Go", expected: []string{"Python", "Go"}},
		{name: "newlines and bullets", input: "Python\n• Go\n• SQL", expected: []string{"Python", "Go", "SQL"}},
		{name: "mixed separators", input: "Python,Go;SQL", expected: []string{"Python", "Go", "SQL"}},
		{name: "trailing periods trimmed", input: "Python., Go.", expected: []string{"Python", "Go"}},
		{name: "single char dropped", input: "Python, R", expected: []string{"Python"}},
		{name: "c++ survives", input: "C++, Go", expected: []string{"C++", "Go"}},
		{name: "empty", input: "", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitSkills(tt.input))
		})
	}
}

func TestImportanceByPosition(t *testing.T) {
	tests := []struct {
		name     string
		position int
		total    int
		expected float64
	}{
		{name: "first of five", position: 0, total: 5, expected: 1.0},
		{name: "last of five", position: 4, total: 5, expected: 0.1},
		{name: "middle of five", position: 2, total: 5, expected: 0.6},
		{name: "second of five", position: 1, total: 5, expected: 0.8},
		{name: "single skill gets full importance", position: 0, total: 1, expected: 1.0},
		{name: "first of two", position: 0, total: 2, expected: 1.0},
		{name: "second of two", position: 1, total: 2, expected: 0.1},
		{name: "out of range falls back to default", position: 7, total: 5, expected: 0.5},
		{name: "negative position falls back", position: -1, total: 5, expected: 0.5},
		{name: "zero total falls back", position: 0, total: 0, expected: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ImportanceByPosition(tt.position, tt.total), 1e-9)
		})
	}
}

func TestLevelFromTitle(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{title: "Senior Backend Engineer", expected: LevelSenior},
		{title: "Staff Engineer", expected: LevelSenior},
		{title: "VP of Engineering", expected: LevelSenior},
		{title: "Junior Developer", expected: LevelEntry},
		{title: "Graduate Software Engineer", expected: LevelEntry},
		{title: "Software Engineer", expected: LevelMid},
		{title: "Backend Developer", expected: LevelMid},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.expected, LevelFromTitle(tt.title))
		})
	}
}

func TestGenerateDescription(t *testing.T) {
	desc := GenerateDescription("Senior Go Developer", "Acme", []string{"Go", "Postgres"}, "Berlin")
	assert.Contains(t, desc, "Acme")
	assert.Contains(t, desc, "Go, Postgres")
	assert.Contains(t, desc, "Berlin")
	assert.Contains(t, desc, "mentor")

	// Location defaults to Remote; skill list is capped at five.
	many := []string{"A1", "B2", "C3", "D4", "E5", "F6"}
	desc = GenerateDescription("Junior Developer", "Acme", many, "")
	assert.Contains(t, desc, "Remote")
	assert.NotContains(t, desc, "F6")
	assert.True(t, strings.Contains(desc, "graduates") || strings.Contains(desc, "entry-level"))
}

func TestBuild(t *testing.T) {
	job := Build(types.JobSpec{
		Title:    "Backend Engineer",
		Company:  "Initech",
		Location: "Austin",
		Skills: []types.Skill{
			{Name: "Python"},
			{Name: "Postgres"},
			{Name: "Docker", Weight: 0.9}, // explicit weight wins over position
		},
	})

	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, "Initech", job.Company)
	assert.Equal(t, "Austin", job.Location)
	assert.NotEmpty(t, job.Description)

	require.Len(t, job.Requirements, 3)
	assert.InDelta(t, 1.0, job.Requirements[0].Weight, 1e-9)
	assert.InDelta(t, 0.6, job.Requirements[1].Weight, 1e-9)
	assert.InDelta(t, 0.9, job.Requirements[2].Weight, 1e-9)
}
