package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"namecraft/internal/store"
)

const timeLayout = time.RFC3339Nano

func (c *Client) SaveNames(ctx context.Context, records []store.Record) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO names (run_id, seq, seed, theme, theme_normalized, kind, name, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.ExecContext(ctx,
			r.RunID,
			r.Seq,
			r.Seed,
			r.Theme,
			store.NormalizeTheme(r.Theme),
			r.Kind,
			r.Name,
			r.CreatedAt.UTC().Format(timeLayout),
		)
		if err != nil {
			return fmt.Errorf("saving name %q: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing names: %w", err)
	}
	return nil
}

// ListNames returns matching records, most recent first.
func (c *Client) ListNames(ctx context.Context, filter store.Filter) ([]store.Record, error) {
	query := `
	SELECT run_id, seq, seed, theme, kind, name, created_at
	FROM names
	WHERE (? = '' OR run_id = ?)
	  AND (? = '' OR theme_normalized = ?)
	  AND (? = '' OR lower(kind) = lower(?))
	ORDER BY id DESC
	LIMIT ?
	`
	theme := store.NormalizeTheme(filter.Theme)
	rows, err := c.db.QueryContext(ctx, query,
		filter.RunID, filter.RunID,
		theme, theme,
		filter.Kind, filter.Kind,
		filter.EffectiveLimit(),
	)
	if err != nil {
		return nil, fmt.Errorf("listing names: %w", err)
	}
	defer rows.Close()

	records := []store.Record{}
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
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

	rows, err := c.db.QueryContext(ctx, `
	SELECT run_id, seed, COUNT(*), MIN(created_at)
	FROM names
	GROUP BY run_id, seed
	ORDER BY MAX(id) DESC
	LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	runs := []store.RunSummary{}
	for rows.Next() {
		var run store.RunSummary
		var created string
		if err := rows.Scan(&run.RunID, &run.Seed, &run.Names, &created); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if run.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("parsing run time: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}

func scanRecord(rows *sql.Rows, extra ...any) (store.Record, error) {
	var r store.Record
	var created string
	dest := append([]any{&r.RunID, &r.Seq, &r.Seed, &r.Theme, &r.Kind, &r.Name, &created}, extra...)
	if err := rows.Scan(dest...); err != nil {
		return store.Record{}, fmt.Errorf("scanning name: %w", err)
	}
	t, err := time.Parse(timeLayout, created)
	if err != nil {
		return store.Record{}, fmt.Errorf("parsing name time: %w", err)
	}
	r.CreatedAt = t
	return r, nil
}
