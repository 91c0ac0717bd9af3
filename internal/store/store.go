// Package store provides durable persistence for profiles, jobs, and match
// results, backed by PostgreSQL or a JSON-file fallback.
package store

import (
	"context"
	"errors"

	"github.com/LAWSA07/ProFel/internal/types"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Default weights for the find-matching-jobs ranking.
const (
	defaultSkillOverlapWeight     = 0.6
	defaultVectorSimilarityWeight = 0.4
)

// SkillOverlap records which skills matched for a stored match.
type SkillOverlap struct {
	MatchingSkills []string `json:"matching_skills"`
	Percentage     float64  `json:"percentage"`
}

// StoredProfile is a profile record as persisted.
type StoredProfile struct {
	ID        int64           `json:"id"`
	Username  string          `json:"username"`
	Platform  string          `json:"platform"`
	Data      types.RawRecord `json:"data"`
	Skills    []string        `json:"skills"`
	Embedding []float32       `json:"embedding,omitempty"`
}

// StoredJob is a job record as persisted.
type StoredJob struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Description string    `json:"description"`
	Skills      []string  `json:"skills"`
	Embedding   []float32 `json:"embedding,omitempty"`
}

// JobRanking is one entry of a ranked find-matching-jobs result.
type JobRanking struct {
	Job              StoredJob `json:"job"`
	SkillOverlap     []string  `json:"skill_overlap"`
	SkillOverlapPct  float64   `json:"skill_overlap_pct"`
	VectorSimilarity float64   `json:"vector_similarity"`
	CombinedScore    float64   `json:"combined_score"`
}

// Store durably records profiles, jobs, and matches. Implementations must be
// safe for concurrent use. The matching core calls these opportunistically;
// callers degrade to a no-op on failure rather than aborting a match.
type Store interface {
	StoreProfile(ctx context.Context, username, platform string, data types.RawRecord, skills []string, embedding []float32) (int64, error)
	StoreJob(ctx context.Context, title, company, description string, skills []string, embedding []float32) (int64, error)
	StoreMatch(ctx context.Context, profileID, jobID int64, score float64, overlap SkillOverlap) error
	GetProfile(ctx context.Context, username, platform string) (*StoredProfile, error)
	GetJob(ctx context.Context, id int64) (*StoredJob, error)
	FindMatchingJobs(ctx context.Context, embedding []float32, skills []string, limit int) ([]JobRanking, error)
	Close()
}
