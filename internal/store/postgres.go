package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
	pgxvector "github.com/pgvector/pgvector-go/pgx"

	"github.com/LAWSA07/ProFel/internal/embedding"
	"github.com/LAWSA07/ProFel/internal/skills"
	"github.com/LAWSA07/ProFel/internal/types"
)

// embeddingDim is the column width for stored embedding vectors.
const embeddingDim = 768

// PostgresStore persists records in PostgreSQL with pgvector embeddings.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool, registers vector types, and
// ensures the schema exists.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}
	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return pgxvector.RegisterTypes(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &PostgresStore{pool: pool}
	if err := s.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS profiles (
			id SERIAL PRIMARY KEY,
			username VARCHAR(255) NOT NULL,
			platform VARCHAR(50) NOT NULL,
			data JSONB NOT NULL,
			skills JSONB,
			embedding_overall VECTOR(%d),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(username, platform)
		)`, embeddingDim),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS jobs (
			id SERIAL PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			company VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			skills JSONB NOT NULL,
			embedding_overall VECTOR(%d),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`, embeddingDim),
		`CREATE TABLE IF NOT EXISTS matches (
			id SERIAL PRIMARY KEY,
			profile_id INTEGER REFERENCES profiles(id) ON DELETE CASCADE,
			job_id INTEGER REFERENCES jobs(id) ON DELETE CASCADE,
			score FLOAT NOT NULL,
			skill_overlap JSONB NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(profile_id, job_id)
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// StoreProfile upserts a profile record keyed by username and platform.
func (s *PostgresStore) StoreProfile(ctx context.Context, username, platform string, data types.RawRecord, skillNames []string, embedding []float32) (int64, error) {
	dataJSON, err := json.Marshal(data)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal profile data: %w", err)
	}
	skillsJSON, err := json.Marshal(skillNames)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal profile skills: %w", err)
	}

	var id int64
	err = s.pool.QueryRow(ctx,
		`INSERT INTO profiles (username, platform, data, skills, embedding_overall)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (username, platform)
		 DO UPDATE SET data = $3, skills = $4, embedding_overall = $5, updated_at = NOW()
		 RETURNING id`,
		username, platform, dataJSON, skillsJSON, vectorOrNil(embedding),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to store profile: %w", err)
	}
	return id, nil
}

// StoreJob inserts a job record and returns its id.
func (s *PostgresStore) StoreJob(ctx context.Context, title, company, description string, skillNames []string, embedding []float32) (int64, error) {
	skillsJSON, err := json.Marshal(skillNames)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal job skills: %w", err)
	}

	var id int64
	err = s.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, company, description, skills, embedding_overall)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		title, company, description, skillsJSON, vectorOrNil(embedding),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to store job: %w", err)
	}
	return id, nil
}

// StoreMatch upserts a match record for a profile-job pair.
func (s *PostgresStore) StoreMatch(ctx context.Context, profileID, jobID int64, score float64, overlap SkillOverlap) error {
	overlapJSON, err := json.Marshal(overlap)
	if err != nil {
		return fmt.Errorf("failed to marshal skill overlap: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO matches (profile_id, job_id, score, skill_overlap)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (profile_id, job_id) DO UPDATE SET score = $3, skill_overlap = $4`,
		profileID, jobID, score, overlapJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to store match: %w", err)
	}
	return nil
}

// GetProfile fetches a profile by username and platform.
func (s *PostgresStore) GetProfile(ctx context.Context, username, platform string) (*StoredProfile, error) {
	var (
		profile    StoredProfile
		dataJSON   []byte
		skillsJSON []byte
		vec        *pgvector.Vector
	)
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, platform, data, skills, embedding_overall
		 FROM profiles WHERE username = $1 AND platform = $2`,
		username, platform,
	).Scan(&profile.ID, &profile.Username, &profile.Platform, &dataJSON, &skillsJSON, &vec)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if err := json.Unmarshal(dataJSON, &profile.Data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile data: %w", err)
	}
	if len(skillsJSON) > 0 {
		if err := json.Unmarshal(skillsJSON, &profile.Skills); err != nil {
			return nil, fmt.Errorf("failed to unmarshal profile skills: %w", err)
		}
	}
	if vec != nil {
		profile.Embedding = vec.Slice()
	}
	return &profile, nil
}

// GetJob fetches a job by id.
func (s *PostgresStore) GetJob(ctx context.Context, id int64) (*StoredJob, error) {
	var (
		job        StoredJob
		skillsJSON []byte
		vec        *pgvector.Vector
	)
	err := s.pool.QueryRow(ctx,
		`SELECT id, title, company, description, skills, embedding_overall
		 FROM jobs WHERE id = $1`,
		id,
	).Scan(&job.ID, &job.Title, &job.Company, &job.Description, &skillsJSON, &vec)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	if err := json.Unmarshal(skillsJSON, &job.Skills); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job skills: %w", err)
	}
	if vec != nil {
		job.Embedding = vec.Slice()
	}
	return &job, nil
}

// FindMatchingJobs returns jobs ranked by blended skill overlap and
// embedding distance. When the profile embedding is absent the ranking falls
// back to skill overlap alone.
func (s *PostgresStore) FindMatchingJobs(ctx context.Context, embedding []float32, skillNames []string, limit int) ([]JobRanking, error) {
	if limit <= 0 {
		limit = 10
	}

	var (
		rows pgx.Rows
		err  error
	)
	if len(embedding) > 0 {
		rows, err = s.pool.Query(ctx,
			`SELECT id, title, company, description, skills, embedding_overall
			 FROM jobs
			 ORDER BY embedding_overall <=> $1 NULLS LAST
			 LIMIT $2`,
			pgvector.NewVector(embedding), limit,
		)
	} else {
		rows, err = s.pool.Query(ctx,
			`SELECT id, title, company, description, skills, embedding_overall
			 FROM jobs
			 ORDER BY created_at DESC
			 LIMIT $1`,
			limit,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	jobRecords := []StoredJob{}
	for rows.Next() {
		var (
			job        StoredJob
			skillsJSON []byte
			vec        *pgvector.Vector
		)
		if err := rows.Scan(&job.ID, &job.Title, &job.Company, &job.Description, &skillsJSON, &vec); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		if err := json.Unmarshal(skillsJSON, &job.Skills); err != nil {
			return nil, fmt.Errorf("failed to unmarshal job skills: %w", err)
		}
		if vec != nil {
			job.Embedding = vec.Slice()
		}
		jobRecords = append(jobRecords, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read jobs: %w", err)
	}

	return rankJobs(jobRecords, embedding, skillNames, limit), nil
}

// vectorOrNil wraps an embedding for pgvector, preserving NULL for absent
// vectors.
func vectorOrNil(embedding []float32) any {
	if len(embedding) == 0 {
		return nil
	}
	return pgvector.NewVector(embedding)
}

// rankJobs blends skill overlap with vector similarity and sorts descending.
// Shared between the postgres and JSON-file stores.
func rankJobs(jobRecords []StoredJob, profileEmbedding []float32, skillNames []string, limit int) []JobRanking {
	profileSet := make(map[string]bool, len(skillNames))
	for _, name := range skillNames {
		if key := skills.Normalize(name); key != "" {
			profileSet[key] = true
		}
	}

	rankings := make([]JobRanking, 0, len(jobRecords))
	for _, job := range jobRecords {
		overlap := []string{}
		for _, name := range job.Skills {
			if profileSet[skills.Normalize(name)] {
				overlap = append(overlap, name)
			}
		}
		overlapPct := 0.0
		if len(job.Skills) > 0 {
			overlapPct = float64(len(overlap)) / float64(len(job.Skills))
		}

		similarity := embedding.CosineSimilarity(profileEmbedding, job.Embedding)
		rankings = append(rankings, JobRanking{
			Job:              job,
			SkillOverlap:     overlap,
			SkillOverlapPct:  overlapPct,
			VectorSimilarity: similarity,
			CombinedScore:    defaultSkillOverlapWeight*overlapPct + defaultVectorSimilarityWeight*similarity,
		})
	}

	sortRankings(rankings)
	if len(rankings) > limit {
		rankings = rankings[:limit]
	}
	return rankings
}
