package postgres

import (
	"context"
	"fmt"
)

func (c *Client) EnsureSchema(ctx context.Context) error {
	// Executed as one multi-statement call, which PostgreSQL runs in an
	// implicit transaction.
	ddl := `
CREATE TABLE IF NOT EXISTS names (
    id               BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    run_id           TEXT NOT NULL,
    seq              INTEGER NOT NULL,
    seed             BIGINT NOT NULL,
    theme            TEXT NOT NULL,
    theme_normalized TEXT NOT NULL,
    kind             TEXT NOT NULL,
    name             TEXT NOT NULL,
    created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
    search_vector    TSVECTOR GENERATED ALWAYS AS (to_tsvector('simple', name)) STORED,
    CONSTRAINT uq_names_run_seq UNIQUE (run_id, seq)
);

CREATE INDEX IF NOT EXISTS idx_names_run ON names (run_id);
CREATE INDEX IF NOT EXISTS idx_names_theme ON names (theme_normalized);
CREATE INDEX IF NOT EXISTS idx_names_kind ON names (kind);
CREATE INDEX IF NOT EXISTS idx_names_kind_name ON names (kind, name);
CREATE INDEX IF NOT EXISTS idx_names_search ON names USING GIN (search_vector);
`
	_, err := c.pool.Exec(ctx, ddl)
	if err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}
	return nil
}
