// Package types provides type definitions for structured data used throughout the ProFel matching engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Job represents a job posting with weighted skill requirements.
// Each requirement's weight is its importance on a 0-1 scale.
type Job struct {
	Title        string  `json:"title"`
	Company      string  `json:"company"`
	Location     string  `json:"location,omitempty"`
	Description  string  `json:"description,omitempty"`
	Requirements []Skill `json:"requirements"`
}

// JobSpec describes a job to build when no full posting is available.
// Skills are listed most-important first; importance is derived from position
// unless explicit importances are supplied.
type JobSpec struct {
	Title    string  `json:"title"`
	Company  string  `json:"company"`
	Location string  `json:"location,omitempty"`
	Skills   []Skill `json:"skills,omitempty"`
}
