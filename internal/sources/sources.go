// Package sources fetches candidate profiles from developer platforms.
// Each platform implements ProfileSource; a Registry routes fetch requests
// to the right source by platform name.
package sources

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/LAWSA07/ProFel/internal/types"
)

// ErrUnsupportedPlatform is returned when no source is registered for the
// requested platform.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// ErrProfileNotFound is returned when the platform has no profile for the
// requested username.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileSource fetches one platform's profile for a username.
type ProfileSource interface {
	Platform() string
	FetchProfile(ctx context.Context, username string) (types.PlatformProfile, error)
}

// Request names one profile to fetch.
type Request struct {
	Platform string `json:"platform" validate:"required"`
	Username string `json:"username" validate:"required"`
}

// Registry maps platform names to their profile sources. Safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	sources map[string]ProfileSource
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{sources: make(map[string]ProfileSource)}
}

// Register adds a source, replacing any existing source for the same
// platform.
func (r *Registry) Register(source ProfileSource) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources[source.Platform()] = source
}

// Get returns the source for a platform.
func (r *Registry) Get(platform string) (ProfileSource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	source, ok := r.sources[platform]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, platform)
	}
	return source, nil
}

// Platforms lists the registered platform names in sorted order.
func (r *Registry) Platforms() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	platforms := make([]string, 0, len(r.sources))
	for platform := range r.sources {
		platforms = append(platforms, platform)
	}
	sort.Strings(platforms)
	return platforms
}

// FetchAll fetches every requested profile concurrently. Requests for
// unregistered platforms and per-platform fetch failures are logged and
// skipped; one platform being down never discards the others' profiles.
// The output preserves request order.
func (r *Registry) FetchAll(ctx context.Context, requests []Request, log zerolog.Logger) ([]types.PlatformProfile, error) {
	results := make([]*types.PlatformProfile, len(requests))

	g, gctx := errgroup.WithContext(ctx)
	for i, req := range requests {
		source, err := r.Get(req.Platform)
		if err != nil {
			log.Warn().Str("platform", req.Platform).Str("username", req.Username).
				Msg("skipping request for unregistered platform")
			continue
		}
		g.Go(func() error {
			profile, err := source.FetchProfile(gctx, req.Username)
			if err != nil {
				log.Warn().Err(err).Str("platform", req.Platform).Str("username", req.Username).
					Msg("skipping failed profile fetch")
				return nil
			}
			results[i] = &profile
			return nil
		})
	}
	_ = g.Wait()

	profiles := make([]types.PlatformProfile, 0, len(requests))
	for _, p := range results {
		if p != nil {
			profiles = append(profiles, *p)
		}
	}
	return profiles, nil
}
