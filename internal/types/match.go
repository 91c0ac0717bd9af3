// Package types provides type definitions for structured data used throughout the ProFel matching engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillMatch records how one job requirement fared against the candidate.
// MatchScore is job importance times the achieved candidate level, or 0 when
// the requirement went unmatched.
type SkillMatch struct {
	SkillName      string  `json:"skill_name"`
	JobImportance  float64 `json:"job_importance"`
	CandidateLevel float64 `json:"candidate_level"`
	MatchScore     float64 `json:"match_score"`
}

// MatchOutcome is the output of the weighted skill matcher for one
// candidate-skills x job-skills comparison.
type MatchOutcome struct {
	SkillMatches  []SkillMatch `json:"skill_matches"`
	MissingSkills []string     `json:"missing_skills"`
	OverallMatch  float64      `json:"overall_match"`
	Strengths     []string     `json:"strengths"`
}

// MatchResult is the terminal, read-only artifact of one profile x job
// comparison. It is immutable once produced and serializes with these exact
// field names.
type MatchResult struct {
	ProfileName    string       `json:"profile_name"`
	JobTitle       string       `json:"job_title"`
	Company        string       `json:"company"`
	OverallMatch   float64      `json:"overall_match"`
	SkillMatches   []SkillMatch `json:"skill_matches"`
	MissingSkills  []string     `json:"missing_skills"`
	Strengths      []string     `json:"strengths"`
	Recommendation string       `json:"recommendation"`
	Error          string       `json:"error,omitempty"`
}

// MatchDetails carries skill counts for the coarse score path.
type MatchDetails struct {
	ProfileSkillsCount  int `json:"profile_skills_count"`
	JobSkillsCount      int `json:"job_skills_count"`
	MatchingSkillsCount int `json:"matching_skills_count"`
}

// MatchScore is the coarse combined score for a profile x job pair: plain
// normalized-set overlap blended with semantic vector similarity. Scores are
// on a 0-1 scale.
type MatchScore struct {
	OverallScore     float64       `json:"overall_score"`
	SkillMatch       float64       `json:"skill_match"`
	VectorSimilarity float64       `json:"vector_similarity"`
	ExperienceMatch  float64       `json:"experience_match"`
	SkillsMatched    []string      `json:"skills_matched"`
	SkillsMissing    []string      `json:"skills_missing"`
	MatchDetails     *MatchDetails `json:"match_details,omitempty"`
	Error            string        `json:"error,omitempty"`

	// Set only for combined-profile matches.
	ProfileName           string             `json:"profile_name,omitempty"`
	Platforms             []string           `json:"platforms,omitempty"`
	PlatformContributions map[string]float64 `json:"platform_contributions,omitempty"`
}

// RankedMatch pairs a job with its match result for batch ranking.
type RankedMatch struct {
	JobTitle       string      `json:"job_title"`
	Company        string      `json:"company"`
	OverallMatch   float64     `json:"overall_match"`
	Recommendation string      `json:"recommendation"`
	Result         MatchResult `json:"result"`
}

// ProfileMatches holds one profile's descending-sorted matches across jobs.
type ProfileMatches struct {
	ProfileName string        `json:"profile_name"`
	Matches     []RankedMatch `json:"matches"`
}
