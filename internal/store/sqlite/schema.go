package sqlite

import (
	"context"
	"fmt"
	"strings"
)

func (c *Client) EnsureSchema(ctx context.Context) error {
	ddl := `
	CREATE TABLE IF NOT EXISTS names (
		id               INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id           TEXT NOT NULL,
		seq              INTEGER NOT NULL,
		seed             INTEGER NOT NULL,
		theme            TEXT NOT NULL,
		theme_normalized TEXT NOT NULL,
		kind             TEXT NOT NULL,
		name             TEXT NOT NULL,
		created_at       TEXT NOT NULL,
		CONSTRAINT uq_names_run_seq UNIQUE (run_id, seq)
	);

	CREATE INDEX IF NOT EXISTS idx_names_run ON names (run_id);
	CREATE INDEX IF NOT EXISTS idx_names_theme ON names (theme_normalized);
	CREATE INDEX IF NOT EXISTS idx_names_kind ON names (kind);
	CREATE INDEX IF NOT EXISTS idx_names_kind_name ON names (kind, name);

	CREATE VIRTUAL TABLE IF NOT EXISTS names_fts USING fts5(
		name,
		content=names,
		content_rowid=id
	);

	CREATE TRIGGER IF NOT EXISTS names_ai AFTER INSERT ON names BEGIN
		INSERT INTO names_fts(rowid, name) VALUES (new.id, new.name);
	END;

	CREATE TRIGGER IF NOT EXISTS names_ad AFTER DELETE ON names BEGIN
		INSERT INTO names_fts(names_fts, rowid, name) VALUES ('delete', old.id, old.name);
	END;
	`

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range splitStatements(ddl) {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing DDL: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing schema transaction: %w", err)
	}

	return nil
}

// splitStatements breaks the DDL on lines ending in ';'. Trigger bodies
// end with "END;" so their inner statements stay attached.
func splitStatements(ddl string) []string {
	var statements []string
	var current strings.Builder
	inTrigger := false

	for _, line := range strings.Split(ddl, "\n") {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")

		if strings.HasPrefix(strings.ToUpper(stripped), "CREATE TRIGGER") {
			inTrigger = true
		}
		if !strings.HasSuffix(stripped, ";") {
			continue
		}
		if inTrigger && !strings.EqualFold(stripped, "END;") {
			continue
		}
		inTrigger = false
		statements = append(statements, current.String())
		current.Reset()
	}

	if strings.TrimSpace(current.String()) != "" {
		statements = append(statements, current.String())
	}

	return statements
}
