package sqlite

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

	ftsQuery := convertWebsearchToFTS5(query)
	theme := store.NormalizeTheme(filter.Theme)

	sqlQuery := `
	SELECT n.run_id, n.seq, n.seed, n.theme, n.kind, n.name, n.created_at,
		   -bm25(names_fts) AS score
	FROM names_fts
	JOIN names n ON names_fts.rowid = n.id
	WHERE names_fts MATCH ?
	  AND (? = '' OR n.run_id = ?)
	  AND (? = '' OR n.theme_normalized = ?)
	  AND (? = '' OR lower(n.kind) = lower(?))
	ORDER BY score DESC, n.name ASC
	LIMIT ?
	`

	rows, err := c.db.QueryContext(ctx, sqlQuery,
		ftsQuery,
		filter.RunID, filter.RunID,
		theme, theme,
		filter.Kind, filter.Kind,
		filter.EffectiveLimit(),
	)
	if err != nil {
		return nil, fmt.Errorf("searching names: %w", err)
	}
	defer rows.Close()

	results := []store.SearchResult{}
	for rows.Next() {
		var score float64
		r, err := scanRecord(rows, &score)
		if err != nil {
			return nil, err
		}
		results = append(results, store.SearchResult{Record: r, Score: score})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating search results: %w", err)
	}

	return results, nil
}

// convertWebsearchToFTS5 rewrites web-search style input ("a b", "a -b",
// quoted phrases, OR) into FTS5 query syntax.
func convertWebsearchToFTS5(query string) string {
	var result strings.Builder
	var inQuote bool
	var current strings.Builder

	flushToken := func() {
		token := current.String()
		current.Reset()
		if token == "" {
			return
		}

		upper := strings.ToUpper(token)
		switch upper {
		case "AND", "OR", "NOT":
			if result.Len() > 0 {
				result.WriteString(" ")
			}
			result.WriteString(upper)
			return
		}

		if result.Len() > 0 {
			switch lastWord(result.String()) {
			case "AND", "OR", "NOT", "":
				result.WriteString(" ")
			default:
				result.WriteString(" AND ")
			}
		}

		if strings.HasPrefix(token, "-") && len(token) > 1 {
			result.WriteString("NOT ")
			result.WriteString(token[1:])
			return
		}
		result.WriteString(token)
	}

	for i := 0; i < len(query); i++ {
		ch := query[i]
		switch {
		case ch == '"':
			if !inQuote {
				flushToken()
				inQuote = true
				continue
			}
			inQuote = false
			phrase := current.String()
			current.Reset()
			if phrase == "" {
				continue
			}
			if result.Len() > 0 {
				result.WriteString(" AND ")
			}
			result.WriteString(`"` + phrase + `"`)
		case inQuote:
			current.WriteByte(ch)
		case ch == ' ' || ch == '\t':
			flushToken()
		default:
			current.WriteByte(ch)
		}
	}

	flushToken()

	return result.String()
}

func lastWord(s string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}
	return words[len(words)-1]
}
