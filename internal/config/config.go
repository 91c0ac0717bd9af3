// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/LAWSA07/ProFel/internal/matching"
)

// Config holds runtime configuration. All fields are optional; missing
// values fall back to defaults or environment variables.
type Config struct {
	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL; empty selects the JSON file store
	DataDir     string `json:"data_dir,omitempty"`     // Directory for the JSON file store

	// External services
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key for embeddings
	EmbeddingModel string `json:"embedding_model,omitempty"` // Embedding model name
	GitHubToken    string `json:"github_token,omitempty"`    // GitHub token for higher API rate limits

	// Matching behavior
	SkillMatchThreshold    float64 `json:"skill_match_threshold,omitempty"`    // Partial-match similarity threshold (0.0-1.0)
	SkillOverlapWeight     float64 `json:"skill_overlap_weight,omitempty"`     // Combined-score weight for skill overlap
	VectorSimilarityWeight float64 `json:"vector_similarity_weight,omitempty"` // Combined-score weight for vector similarity
	StrengthPolicy         string  `json:"strength_policy,omitempty"`          // "importance_weighted" or "high_bar"

	// Server
	ListenAddr string `json:"listen_addr,omitempty"` // HTTP listen address

	// Logging
	LogLevel    string `json:"log_level,omitempty"`
	Environment string `json:"environment,omitempty"` // "production" switches to JSON log output
	Verbose     bool   `json:"verbose,omitempty"`
}

// Default returns the configuration used when nothing is provided.
func Default() Config {
	return Config{
		DataDir:                "data",
		EmbeddingModel:         "text-embedding-004",
		SkillMatchThreshold:    0.7,
		SkillOverlapWeight:     0.6,
		VectorSimilarityWeight: 0.4,
		StrengthPolicy:         string(matching.StrengthImportanceWeighted),
		ListenAddr:             ":8080",
		LogLevel:               "info",
	}
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills fields from environment variables when they are unset.
// Called after Load so the file wins over the environment.
func (c *Config) FromEnv() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.GitHubToken == "" {
		c.GitHubToken = os.Getenv("GITHUB_TOKEN")
	}
}

// Validate checks value ranges. Required fields are enforced later by the
// commands that need them.
func (c *Config) Validate() error {
	if c.SkillMatchThreshold < 0 || c.SkillMatchThreshold > 1 {
		return fmt.Errorf("config error: 'skill_match_threshold' must be between 0.0 and 1.0")
	}
	if c.SkillOverlapWeight < 0 || c.SkillOverlapWeight > 1 {
		return fmt.Errorf("config error: 'skill_overlap_weight' must be between 0.0 and 1.0")
	}
	if c.VectorSimilarityWeight < 0 || c.VectorSimilarityWeight > 1 {
		return fmt.Errorf("config error: 'vector_similarity_weight' must be between 0.0 and 1.0")
	}
	if sum := c.SkillOverlapWeight + c.VectorSimilarityWeight; sum > 0 && (sum < 0.99 || sum > 1.01) {
		return fmt.Errorf("config error: overlap and similarity weights must sum to 1.0, got %.2f", sum)
	}
	if c.StrengthPolicy != "" && !matching.StrengthPolicy(c.StrengthPolicy).Valid() {
		return fmt.Errorf("config error: unknown strength policy %q", c.StrengthPolicy)
	}
	return nil
}

// MergeWithDefaults fills unset fields from defaults and returns the result.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.EmbeddingModel == "" {
		result.EmbeddingModel = defaults.EmbeddingModel
	}
	if result.SkillMatchThreshold == 0 {
		result.SkillMatchThreshold = defaults.SkillMatchThreshold
	}
	// The weights default as a pair: a lone zero alongside a set weight is a
	// deliberate all-overlap or all-vector blend, not an unset field.
	if result.SkillOverlapWeight == 0 && result.VectorSimilarityWeight == 0 {
		result.SkillOverlapWeight = defaults.SkillOverlapWeight
		result.VectorSimilarityWeight = defaults.VectorSimilarityWeight
	}
	if result.StrengthPolicy == "" {
		result.StrengthPolicy = defaults.StrengthPolicy
	}
	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	return result
}
