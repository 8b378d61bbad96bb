package postgres

import (
	"context"
	"fmt"
	"strings"

	"namecraft/internal/store"
)

func (c *Client) Search(ctx context.Context, query string, filter store.Filter) ([]store.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("query must not be empty")
	}

	sql := `
SELECT run_id, seq, seed, theme, kind, name, created_at,
    ts_rank(search_vector, websearch_to_tsquery('simple', $1)) AS score
FROM names
WHERE search_vector @@ websearch_to_tsquery('simple', $1)
  AND ($2 = '' OR run_id = $2)
  AND ($3 = '' OR theme_normalized = $3)
  AND ($4 = '' OR lower(kind) = lower($4))
ORDER BY score DESC, name ASC
LIMIT $5
`

	rows, err := c.pool.Query(ctx, sql, query, filter.RunID, store.NormalizeTheme(filter.Theme), filter.Kind, filter.EffectiveLimit())
	if err != nil {
		return nil, fmt.Errorf("searching names: %w", err)
	}
	defer rows.Close()

	results := []store.SearchResult{}
	for rows.Next() {
		var r store.SearchResult
		err := rows.Scan(&r.RunID, &r.Seq, &r.Seed, &r.Theme, &r.Kind, &r.Name, &r.CreatedAt, &r.Score)
		if err != nil {
			return nil, fmt.Errorf("scanning search result: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating search results: %w", err)
	}

	return results, nil
}
