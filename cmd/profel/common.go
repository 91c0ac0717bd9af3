package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/LAWSA07/ProFel/internal/config"
	"github.com/LAWSA07/ProFel/internal/embedding"
	"github.com/LAWSA07/ProFel/internal/logger"
	"github.com/LAWSA07/ProFel/internal/matching"
	"github.com/LAWSA07/ProFel/internal/scoring"
	"github.com/LAWSA07/ProFel/internal/sources"
	"github.com/LAWSA07/ProFel/internal/store"
)

// loadConfig loads the optional config file, applies environment fallbacks
// and defaults, and validates the result.
func loadConfig(configPath string) (config.Config, error) {
	var cfg config.Config

	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	cfg.FromEnv()
	cfg = cfg.MergeWithDefaults(config.Default())
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the process logger from config.
func newLogger(cfg config.Config) zerolog.Logger {
	level := cfg.LogLevel
	if cfg.Verbose {
		level = "debug"
	}
	return logger.New(level, cfg.Environment)
}

// buildScorer wires the scorer with the configured store and embedder.
// The returned cleanup closes both; it is safe to call when wiring failed
// partway.
func buildScorer(ctx context.Context, cfg config.Config, log zerolog.Logger) (*scoring.Scorer, store.Store, func(), error) {
	st, err := store.Open(ctx, cfg.DatabaseURL, cfg.DataDir, log)
	if err != nil {
		return nil, nil, func() {}, fmt.Errorf("failed to open store: %w", err)
	}

	opts := []scoring.Option{
		scoring.WithLogger(log),
		scoring.WithStore(st),
		scoring.WithMatchConfig(matching.Config{
			Threshold:      cfg.SkillMatchThreshold,
			StrengthPolicy: matching.StrengthPolicy(cfg.StrengthPolicy),
		}),
		scoring.WithWeights(scoring.Weights{
			SkillOverlap:     cfg.SkillOverlapWeight,
			VectorSimilarity: cfg.VectorSimilarityWeight,
		}),
	}

	var embedder *embedding.GeminiEmbedder
	if cfg.APIKey != "" {
		embedder, err = embedding.NewGeminiEmbedder(ctx, cfg.APIKey, cfg.EmbeddingModel)
		if err != nil {
			st.Close()
			return nil, nil, func() {}, fmt.Errorf("failed to create embedder: %w", err)
		}
		opts = append(opts, scoring.WithEmbedder(embedder))
	} else {
		log.Debug().Msg("no API key configured, skipping semantic similarity")
	}

	cleanup := func() {
		if embedder != nil {
			_ = embedder.Close()
		}
		st.Close()
	}
	return scoring.NewScorer(opts...), st, cleanup, nil
}

// buildRegistry assembles the profile source registry: live GitHub plus
// file-backed sources for every platform when a profile directory is given.
func buildRegistry(cfg config.Config, profileDir string) *sources.Registry {
	registry := sources.NewRegistry()

	var githubOpts []sources.GitHubOption
	if cfg.GitHubToken != "" {
		githubOpts = append(githubOpts, sources.WithGitHubToken(cfg.GitHubToken))
	}
	registry.Register(sources.NewGitHubSource(githubOpts...))

	if profileDir != "" {
		for _, platform := range []string{"github", "linkedin", "leetcode", "codeforces"} {
			registry.Register(sources.NewFileSource(profileDir, platform))
		}
	}

	return registry
}

// readJSONFile reads and unmarshals a JSON file into out.
func readJSONFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// writeOutput writes data as indented JSON to path, or stdout when path is
// empty.
func writeOutput(cmd *cobra.Command, path string, data any) error {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	if path == "" {
		cmd.Println(string(encoded))
		return nil
	}
	if err := os.WriteFile(path, append(encoded, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	cmd.Printf("Wrote %s\n", path)
	return nil
}
