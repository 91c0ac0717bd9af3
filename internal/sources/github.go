package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/LAWSA07/ProFel/internal/types"
)

const (
	githubAPIBase  = "https://api.github.com"
	githubTimeout  = 30 * time.Second
	githubPageSize = 100
)

// GitHubSource fetches public GitHub profiles over the REST API.
type GitHubSource struct {
	client  *http.Client
	baseURL string
	token   string
}

// GitHubOption configures a GitHubSource.
type GitHubOption func(*GitHubSource)

// WithGitHubToken sets a personal access token for higher rate limits.
func WithGitHubToken(token string) GitHubOption {
	return func(s *GitHubSource) { s.token = token }
}

// WithGitHubBaseURL overrides the API base URL, mainly for tests.
func WithGitHubBaseURL(baseURL string) GitHubOption {
	return func(s *GitHubSource) { s.baseURL = baseURL }
}

// NewGitHubSource returns a source for public GitHub profiles.
func NewGitHubSource(opts ...GitHubOption) *GitHubSource {
	s := &GitHubSource{
		client:  &http.Client{Timeout: githubTimeout},
		baseURL: githubAPIBase,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Platform returns the platform name this source serves.
func (s *GitHubSource) Platform() string { return types.PlatformGitHub }

type githubUser struct {
	Login    string `json:"login"`
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
	Company  string `json:"company"`
	Repos    int    `json:"public_repos"`
}

type githubRepo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Language    string   `json:"language"`
	Topics      []string `json:"topics"`
	Stars       int      `json:"stargazers_count"`
	HTMLURL     string   `json:"html_url"`
}

// FetchProfile fetches the user record and their repositories, deriving
// skills from repository languages and topics.
func (s *GitHubSource) FetchProfile(ctx context.Context, username string) (types.PlatformProfile, error) {
	var user githubUser
	if err := s.getJSON(ctx, fmt.Sprintf("%s/users/%s", s.baseURL, username), &user); err != nil {
		return types.PlatformProfile{}, err
	}

	var repos []githubRepo
	reposURL := fmt.Sprintf("%s/users/%s/repos?per_page=%d&sort=updated", s.baseURL, username, githubPageSize)
	if err := s.getJSON(ctx, reposURL, &repos); err != nil {
		return types.PlatformProfile{}, err
	}

	name := user.Name
	if name == "" {
		name = user.Login
	}

	return types.PlatformProfile{
		ID:       uuid.NewString(),
		Name:     name,
		Platform: types.PlatformGitHub,
		Data: types.RawRecord{
			"username":     user.Login,
			"name":         name,
			"bio":          user.Bio,
			"location":     user.Location,
			"company":      user.Company,
			"public_repos": user.Repos,
			"skills":       repoSkills(repos),
			"repositories": repoRecords(repos),
		},
	}, nil
}

func (s *GitHubSource) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("github request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, url)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("github returned %d for %s: %s", resp.StatusCode, url, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode github response: %w", err)
	}
	return nil
}

// repoSkills derives a weighted skill list from repository languages and
// topics. Languages seen more often rank as stronger skills.
func repoSkills(repos []githubRepo) []any {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, repo := range repos {
		for _, candidate := range append([]string{repo.Language}, repo.Topics...) {
			if candidate == "" {
				continue
			}
			if _, seen := counts[candidate]; !seen {
				order = append(order, candidate)
			}
			counts[candidate]++
		}
	}

	skills := make([]any, 0, len(order))
	for _, name := range order {
		level := "beginner"
		switch {
		case counts[name] >= 5:
			level = "expert"
		case counts[name] >= 2:
			level = "intermediate"
		}
		skills = append(skills, map[string]any{"name": name, "level": level})
	}
	return skills
}

func repoRecords(repos []githubRepo) []any {
	records := make([]any, 0, len(repos))
	for _, repo := range repos {
		records = append(records, map[string]any{
			"name":        repo.Name,
			"description": repo.Description,
			"language":    repo.Language,
			"stars":       repo.Stars,
			"url":         repo.HTMLURL,
		})
	}
	return records
}
