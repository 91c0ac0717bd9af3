package store

import (
	"context"

	"github.com/rs/zerolog"
)

// Open selects a store implementation from configuration: PostgreSQL when a
// database URL is set, otherwise the JSON-file fallback. A failed database
// connection also degrades to the file store so matching never depends on
// the database being up.
func Open(ctx context.Context, databaseURL, dataDir string, log zerolog.Logger) (Store, error) {
	if databaseURL != "" {
		pg, err := ConnectPostgres(ctx, databaseURL)
		if err == nil {
			return pg, nil
		}
		log.Warn().Err(err).Msg("database unavailable, falling back to JSON file storage")
	} else {
		log.Warn().Msg("no database URL configured, using JSON file storage")
	}

	return OpenJSONFileStore(dataDir)
}
