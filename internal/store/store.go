package store

import (
	"context"
)

// Store persists generated names so runs can be listed, searched and
// audited after the generator that produced them is gone.
type Store interface {
	Close(ctx context.Context) error
	EnsureSchema(ctx context.Context) error

	SaveNames(ctx context.Context, records []Record) error
	ListNames(ctx context.Context, filter Filter) ([]Record, error)
	ListRuns(ctx context.Context, limit int) ([]RunSummary, error)
	Search(ctx context.Context, query string, filter Filter) ([]SearchResult, error)

	ListRepeatedNames(ctx context.Context, kind string) ([]RepeatedName, error)
	PruneRuns(ctx context.Context, keep int) (int64, error)

	RunSQL(ctx context.Context, query string, params map[string]any) ([]map[string]any, error)
}
