// Package types provides type definitions for structured data used throughout the ProFel matching engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// Candidate level weights derived from a free-text proficiency level.
const (
	LevelExpert       = 1.0
	LevelIntermediate = 0.7
	LevelBeginner     = 0.4
	// LevelFull is used when no level is given: presence counts as a full match.
	LevelFull = 1.0
)

// DefaultImportance is assigned to job requirements that carry no importance.
const DefaultImportance = 0.5

// Skill represents a single skill with a weight in [0,1].
// For a job requirement the weight is its importance; for a candidate skill
// it is the level-derived proficiency.
type Skill struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// ClampWeight forces a weight into the [0,1] range.
func ClampWeight(w float64) float64 {
	if w < 0 {
		return 0
	}
	if w > 1 {
		return 1
	}
	return w
}

// WeightForLevel maps a free-text proficiency level to a candidate weight.
// Unknown or empty levels count as a full match.
func WeightForLevel(level string) float64 {
	switch strings.ToLower(level) {
	case "expert", "advanced":
		return LevelExpert
	case "intermediate":
		return LevelIntermediate
	case "beginner", "basic":
		return LevelBeginner
	default:
		return LevelFull
	}
}
