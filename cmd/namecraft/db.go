package main

import (
	"context"
	"fmt"
	"strings"

	"namecraft/internal/config"
	"namecraft/internal/store"
	"namecraft/internal/store/postgres"
	"namecraft/internal/store/sqlite"
)

// openDB opens the history store named by the DSN scheme and makes sure
// its schema exists.
func openDB(ctx context.Context, cfg *config.ProjectConfig) (store.Store, error) {
	dsn := strings.TrimSpace(cfg.Database.DSN)

	var db store.Store
	var err error
	switch {
	case dsn == "":
		return nil, fmt.Errorf("database dsn is not configured (set database.dsn or NAMECRAFT_DATABASE_DSN)")
	case strings.HasPrefix(dsn, "sqlite://"):
		db, err = sqlite.New(ctx, dsn)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		db, err = postgres.New(ctx, dsn)
	default:
		return nil, fmt.Errorf("unsupported database dsn: %s", dsn)
	}
	if err != nil {
		return nil, err
	}

	if err := db.EnsureSchema(ctx); err != nil {
		db.Close(ctx)
		return nil, err
	}
	return db, nil
}
