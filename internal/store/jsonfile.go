package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/LAWSA07/ProFel/internal/types"
)

// JSONFileStore is the fallback store used when no database is configured.
// Records live in three JSON files under a data directory.
type JSONFileStore struct {
	dir string

	mu       sync.Mutex
	profiles []StoredProfile
	jobs     []StoredJob
	matches  []storedMatch
}

type storedMatch struct {
	ID        int64        `json:"id"`
	ProfileID int64        `json:"profile_id"`
	JobID     int64        `json:"job_id"`
	Score     float64      `json:"score"`
	Overlap   SkillOverlap `json:"skill_overlap"`
}

// OpenJSONFileStore opens (or creates) a JSON-file store in the given
// directory.
func OpenJSONFileStore(dir string) (*JSONFileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &JSONFileStore{dir: dir}
	if err := loadJSON(s.path("profiles.json"), &s.profiles); err != nil {
		return nil, err
	}
	if err := loadJSON(s.path("jobs.json"), &s.jobs); err != nil {
		return nil, err
	}
	if err := loadJSON(s.path("matches.json"), &s.matches); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *JSONFileStore) path(name string) string {
	return filepath.Join(s.dir, name)
}

// Close is a no-op for the file store.
func (s *JSONFileStore) Close() {}

// StoreProfile upserts a profile keyed by username and platform.
func (s *JSONFileStore) StoreProfile(_ context.Context, username, platform string, data types.RawRecord, skillNames []string, embedding []float32) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.profiles {
		if existing.Username == username && existing.Platform == platform {
			s.profiles[i].Data = data
			s.profiles[i].Skills = skillNames
			s.profiles[i].Embedding = embedding
			return existing.ID, s.flushProfiles()
		}
	}

	profile := StoredProfile{
		ID:        int64(len(s.profiles) + 1),
		Username:  username,
		Platform:  platform,
		Data:      data,
		Skills:    skillNames,
		Embedding: embedding,
	}
	s.profiles = append(s.profiles, profile)
	return profile.ID, s.flushProfiles()
}

// StoreJob appends a job record and returns its id.
func (s *JSONFileStore) StoreJob(_ context.Context, title, company, description string, skillNames []string, embedding []float32) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job := StoredJob{
		ID:          int64(len(s.jobs) + 1),
		Title:       title,
		Company:     company,
		Description: description,
		Skills:      skillNames,
		Embedding:   embedding,
	}
	s.jobs = append(s.jobs, job)
	return job.ID, s.flushJobs()
}

// StoreMatch upserts a match for a profile-job pair.
func (s *JSONFileStore) StoreMatch(_ context.Context, profileID, jobID int64, score float64, overlap SkillOverlap) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.matches {
		if existing.ProfileID == profileID && existing.JobID == jobID {
			s.matches[i].Score = score
			s.matches[i].Overlap = overlap
			return s.flushMatches()
		}
	}

	s.matches = append(s.matches, storedMatch{
		ID:        int64(len(s.matches) + 1),
		ProfileID: profileID,
		JobID:     jobID,
		Score:     score,
		Overlap:   overlap,
	})
	return s.flushMatches()
}

// GetProfile fetches a profile by username and platform.
func (s *JSONFileStore) GetProfile(_ context.Context, username, platform string) (*StoredProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, profile := range s.profiles {
		if profile.Username == username && profile.Platform == platform {
			out := profile
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// GetJob fetches a job by id.
func (s *JSONFileStore) GetJob(_ context.Context, id int64) (*StoredJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		if job.ID == id {
			out := job
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

// FindMatchingJobs ranks all stored jobs against the given profile skills
// and embedding.
func (s *JSONFileStore) FindMatchingJobs(_ context.Context, embedding []float32, skillNames []string, limit int) ([]JobRanking, error) {
	if limit <= 0 {
		limit = 10
	}

	s.mu.Lock()
	jobRecords := make([]StoredJob, len(s.jobs))
	copy(jobRecords, s.jobs)
	s.mu.Unlock()

	return rankJobs(jobRecords, embedding, skillNames, limit), nil
}

func (s *JSONFileStore) flushProfiles() error {
	return writeJSON(s.path("profiles.json"), s.profiles)
}

func (s *JSONFileStore) flushJobs() error {
	return writeJSON(s.path("jobs.json"), s.jobs)
}

func (s *JSONFileStore) flushMatches() error {
	return writeJSON(s.path("matches.json"), s.matches)
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// sortRankings orders rankings by combined score descending, stable on input
// order for equal scores.
func sortRankings(rankings []JobRanking) {
	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].CombinedScore > rankings[j].CombinedScore
	})
}
