package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"namecraft/internal/store"
)

func (c *Client) SaveNames(ctx context.Context, records []store.Record) error {
	if len(records) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, r := range records {
		batch.Queue(`
INSERT INTO names (run_id, seq, seed, theme, theme_normalized, kind, name, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, r.RunID, r.Seq, r.Seed, r.Theme, store.NormalizeTheme(r.Theme), r.Kind, r.Name, r.CreatedAt)
	}

	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("saving names: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing names: %w", err)
	}
	return nil
}

// ListNames returns matching records, most recent first.
func (c *Client) ListNames(ctx context.Context, filter store.Filter) ([]store.Record, error) {
	rows, err := c.pool.Query(ctx, `
SELECT run_id, seq, seed, theme, kind, name, created_at
FROM names
WHERE ($1 = '' OR run_id = $1)
  AND ($2 = '' OR theme_normalized = $2)
  AND ($3 = '' OR lower(kind) = lower($3))
ORDER BY id DESC
LIMIT $4
`, filter.RunID, store.NormalizeTheme(filter.Theme), filter.Kind, filter.EffectiveLimit())
	if err != nil {
		return nil, fmt.Errorf("listing names: %w", err)
	}
	defer rows.Close()

	records := []store.Record{}
	for rows.Next() {
		var r store.Record
		if err := rows.Scan(&r.RunID, &r.Seq, &r.Seed, &r.Theme, &r.Kind, &r.Name, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning name: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating names: %w", err)
	}
	return records, nil
}

func (c *Client) ListRuns(ctx context.Context, limit int) ([]store.RunSummary, error) {
	if limit <= 0 {
		limit = store.DefaultLimit
	}

	rows, err := c.pool.Query(ctx, `
SELECT run_id, seed, COUNT(*), MIN(created_at)
FROM names
GROUP BY run_id, seed
ORDER BY MAX(id) DESC
LIMIT $1
`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	runs := []store.RunSummary{}
	for rows.Next() {
		var run store.RunSummary
		if err := rows.Scan(&run.RunID, &run.Seed, &run.Names, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}
