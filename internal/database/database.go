// Package database opens the storage collaborator selected by configuration.
package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hongminglow/blog-be/internal/config"
	"github.com/hongminglow/blog-be/internal/storage"
	"github.com/hongminglow/blog-be/internal/storage/memory"
	"github.com/hongminglow/blog-be/internal/storage/postgres"
)

// Open returns the store for cfg.StorageDriver. Postgres stores are migrated
// before they are returned.
func Open(ctx context.Context, cfg config.Config, logger *slog.Logger) (storage.Store, error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		store, err := postgres.NewStore(ctx, cfg.DatabaseURL, cfg.DBTimeout)
		if err != nil {
			return nil, err
		}
		logger.Info("connected to postgres", "db_timeout", cfg.DBTimeout)
		return store, nil
	case config.DriverMemory:
		logger.Warn("using in-memory storage; data is lost on restart")
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
