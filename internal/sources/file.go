package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/LAWSA07/ProFel/internal/types"
)

// FileSource serves profiles from JSON files on disk, one file per
// username, laid out as <dir>/<platform>/<username>.json. It backs the CLI
// when no live platform access is wanted.
type FileSource struct {
	dir      string
	platform string
}

// NewFileSource returns a source reading the given platform's profiles
// from dir.
func NewFileSource(dir, platform string) *FileSource {
	return &FileSource{dir: dir, platform: platform}
}

// Platform returns the platform name this source serves.
func (s *FileSource) Platform() string { return s.platform }

// FetchProfile loads <dir>/<platform>/<username>.json. The file holds the
// raw platform payload; name falls back to the username when absent.
func (s *FileSource) FetchProfile(_ context.Context, username string) (types.PlatformProfile, error) {
	path := filepath.Join(s.dir, s.platform, username+".json")

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return types.PlatformProfile{}, fmt.Errorf("%w: %s/%s", ErrProfileNotFound, s.platform, username)
	}
	if err != nil {
		return types.PlatformProfile{}, fmt.Errorf("read profile file %s: %w", path, err)
	}

	var data types.RawRecord
	if err := json.Unmarshal(raw, &data); err != nil {
		return types.PlatformProfile{}, fmt.Errorf("parse profile file %s: %w", path, err)
	}

	name, _ := data["name"].(string)
	if name == "" {
		name = username
	}

	return types.PlatformProfile{
		ID:       uuid.NewString(),
		Name:     name,
		Platform: s.platform,
		Data:     data,
	}, nil
}
