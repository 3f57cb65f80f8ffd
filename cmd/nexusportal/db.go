package main

import (
	"context"
	"fmt"
	"strings"

	"nexusportal/internal/config"
	"nexusportal/internal/store"
	"nexusportal/internal/store/postgres"
	"nexusportal/internal/store/sqlite"
)

// openStore picks the backend by DSN scheme, migrates the schema and
// runs the first-open seed.
func openStore(ctx context.Context, cfg *config.ProjectConfig) (store.Store, error) {
	var db store.Store
	var err error
	switch {
	case strings.HasPrefix(cfg.Database.DSN, "sqlite://"):
		db, err = sqlite.New(ctx, cfg.Database.DSN)
	case strings.HasPrefix(cfg.Database.DSN, "postgres://"), strings.HasPrefix(cfg.Database.DSN, "postgresql://"):
		db, err = postgres.New(ctx, cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database dsn %q", cfg.Database.DSN)
	}
	if err != nil {
		return nil, err
	}

	if err := db.EnsureSchema(ctx); err != nil {
		db.Close(ctx)
		return nil, err
	}
	if _, err := db.SeedOnce(ctx, seedDataset(cfg)); err != nil {
		db.Close(ctx)
		return nil, err
	}
	return db, nil
}
