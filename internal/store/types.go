package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Record struct {
	RunID     string
	Seq       int
	Seed      int64
	Theme     string
	Kind      string
	Name      string
	CreatedAt time.Time
}

// Filter narrows ListNames and Search. Empty fields match everything; Theme
// and Kind compare case-insensitively. Limit <= 0 means DefaultLimit.
type Filter struct {
	RunID string
	Theme string
	Kind  string
	Limit int
}

const DefaultLimit = 100

func (f Filter) EffectiveLimit() int {
	if f.Limit <= 0 {
		return DefaultLimit
	}
	return f.Limit
}

type RunSummary struct {
	RunID     string
	Seed      int64
	Names     int
	CreatedAt time.Time
}

type SearchResult struct {
	Record
	Score float64
}

// RepeatedName is a name emitted for the same kind in more than one run.
type RepeatedName struct {
	Kind string
	Name string
	Runs int
}

// Run collects the names of one generation batch under a fresh run id.
type Run struct {
	ID        string
	Seed      int64
	CreatedAt time.Time

	records []Record
}

func NewRun(seed int64, now time.Time) *Run {
	return &Run{ID: uuid.NewString(), Seed: seed, CreatedAt: now.UTC()}
}

func (r *Run) Add(theme, kind, name string) {
	r.records = append(r.records, Record{
		RunID:     r.ID,
		Seq:       len(r.records) + 1,
		Seed:      r.Seed,
		Theme:     theme,
		Kind:      kind,
		Name:      name,
		CreatedAt: r.CreatedAt,
	})
}

func (r *Run) Records() []Record {
	return r.records
}

var ErrNotReadOnly = errors.New("only read-only queries are allowed")

// CheckReadOnly accepts a single SELECT, WITH or EXPLAIN statement.
func CheckReadOnly(query string) error {
	q := strings.TrimSpace(query)
	q = strings.TrimSuffix(q, ";")
	if q == "" {
		return fmt.Errorf("query must not be empty")
	}
	if strings.Contains(q, ";") {
		return fmt.Errorf("%w: multiple statements", ErrNotReadOnly)
	}
	fields := strings.Fields(q)
	switch strings.ToUpper(fields[0]) {
	case "SELECT", "WITH", "EXPLAIN":
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrNotReadOnly, fields[0])
	}
}

// PositionalArgs orders params keyed "1", "2", ... into driver arguments.
func PositionalArgs(params map[string]any) []any {
	args := make([]any, 0, len(params))
	for i := 1; i <= len(params); i++ {
		if val, ok := params[fmt.Sprint(i)]; ok {
			args = append(args, val)
		}
	}
	return args
}

func NormalizeTheme(theme string) string {
	return strings.ToLower(strings.TrimSpace(theme))
}
