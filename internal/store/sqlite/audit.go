package sqlite

import (
	"context"
	"fmt"

	"namecraft/internal/store"
)

// ListRepeatedNames reports names emitted for the same kind in more than
// one run. An empty kind covers every kind.
func (c *Client) ListRepeatedNames(ctx context.Context, kind string) ([]store.RepeatedName, error) {
	rows, err := c.db.QueryContext(ctx, `
	SELECT kind, name, COUNT(DISTINCT run_id) AS runs
	FROM names
	WHERE (? = '' OR lower(kind) = lower(?))
	GROUP BY kind, name
	HAVING COUNT(DISTINCT run_id) > 1
	ORDER BY runs DESC, kind ASC, name ASC
	`, kind, kind)
	if err != nil {
		return nil, fmt.Errorf("listing repeated names: %w", err)
	}
	defer rows.Close()

	repeated := []store.RepeatedName{}
	for rows.Next() {
		var r store.RepeatedName
		if err := rows.Scan(&r.Kind, &r.Name, &r.Runs); err != nil {
			return nil, fmt.Errorf("scanning repeated name: %w", err)
		}
		repeated = append(repeated, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating repeated names: %w", err)
	}
	return repeated, nil
}

// PruneRuns deletes every run except the keep most recent ones.
func (c *Client) PruneRuns(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		return 0, fmt.Errorf("keep must not be negative")
	}

	result, err := c.db.ExecContext(ctx, `
	DELETE FROM names
	WHERE run_id NOT IN (
		SELECT run_id FROM names
		GROUP BY run_id
		ORDER BY MAX(id) DESC
		LIMIT ?
	)
	`, keep)
	if err != nil {
		return 0, fmt.Errorf("pruning runs: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("getting rows affected: %w", err)
	}
	return affected, nil
}
