// Package types provides type definitions for structured data used throughout the ProFel matching engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Known platform names for platform-specific profile sections.
const (
	PlatformGitHub     = "github"
	PlatformLinkedIn   = "linkedin"
	PlatformLeetCode   = "leetcode"
	PlatformCodeforces = "codeforces"
)

// PlatformProfile is one profile as fetched from a single platform.
// Data carries the raw platform payload in whatever shape the source yielded.
type PlatformProfile struct {
	ID       string    `json:"id,omitempty"`
	Name     string    `json:"name"`
	Platform string    `json:"platform"`
	Data     RawRecord `json:"data,omitempty"`
}

// CombinedProfile is the result of merging several platform profiles.
// Platform-specific sections are merged additively; solved problems and
// recent submissions follow last-writer-wins when several LeetCode profiles
// are supplied.
type CombinedProfile struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Skills         []Skill     `json:"skills"`
	Repositories   []RawRecord `json:"repositories"`
	Projects       []RawRecord `json:"projects"`
	Experience     []RawRecord `json:"experience"`
	Education      []RawRecord `json:"education"`
	Certifications []RawRecord `json:"certifications"`
	Platforms      []string    `json:"platforms"`
	ProblemSolving RawRecord   `json:"problem_solving,omitempty"`
	Submissions    []RawRecord `json:"submissions,omitempty"`
}

// RawRecord is an untyped record as yielded by a profile or job source.
// Shapes vary per platform; the skill extractor is the only component that
// branches on shape.
type RawRecord map[string]any
