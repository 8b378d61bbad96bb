// Package registry resolves theme identifiers to merged theme data.
//
// A registry owns three kinds of input: built-in themes, loaded lazily
// through a Loader the first time they are requested; custom themes,
// registered eagerly by identifier; and per-identifier extension fragments
// in registration order. Lookups return the base pools concatenated with
// every extension's pools. The merged view is memoised per identifier and
// dropped whenever a registration touches that identifier.
//
// Identifiers are case-insensitive. A Registry is not safe for concurrent
// use.
package registry

import (
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"namecraft/internal/theme"
	"namecraft/internal/validate"
)

// Loader returns the complete data for a built-in theme key.
type Loader func(key string) (*theme.Data, error)

type customTheme struct {
	id   string
	data *theme.Data
}

type Registry struct {
	load   Loader
	logger *slog.Logger

	builtins   map[string]*theme.Data
	custom     map[string]customTheme
	extensions map[string][]*theme.Data
	merged     map[string]*theme.Data
}

type Option func(*Registry)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func New(load Loader, opts ...Option) *Registry {
	r := &Registry{
		load:       load,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		builtins:   make(map[string]*theme.Data),
		custom:     make(map[string]customTheme),
		extensions: make(map[string][]*theme.Data),
		merged:     make(map[string]*theme.Data),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RegisterCustomTheme adds a complete theme under id. The data is copied.
func (r *Registry) RegisterCustomTheme(id string, data *theme.Data) error {
	if strings.TrimSpace(id) == "" {
		return ErrBlankID
	}
	key := theme.FoldID(id)
	if t, ok := builtinFor(key); ok {
		return &ConflictError{ID: id, Existing: t.String(), BuiltIn: true}
	}
	if existing, ok := r.custom[key]; ok {
		return &ConflictError{ID: id, Existing: existing.id}
	}
	if err := validate.Complete(data).Err(id); err != nil {
		return err
	}

	r.custom[key] = customTheme{id: strings.TrimSpace(id), data: data.Clone()}
	delete(r.merged, key)
	r.logger.Debug("custom theme registered", slog.String("theme", id))
	return nil
}

// RegisterExtension appends fragment to baseID's extension list. The base
// does not need to exist yet; it is resolved at lookup time.
func (r *Registry) RegisterExtension(baseID string, fragment *theme.Data) error {
	if strings.TrimSpace(baseID) == "" {
		return ErrBlankID
	}
	if err := validate.Extension(fragment).Err(baseID); err != nil {
		return err
	}

	key := theme.FoldID(baseID)
	r.extensions[key] = append(r.extensions[key], fragment.Clone())
	delete(r.merged, key)
	r.logger.Debug("theme extension registered",
		slog.String("theme", baseID),
		slog.Int("extensions", len(r.extensions[key])),
	)
	return nil
}

// Theme returns the merged view for id. Callers must treat the result as
// read-only; it is shared with the cache.
func (r *Registry) Theme(id string) (*theme.Data, error) {
	key := theme.FoldID(id)
	if merged, ok := r.merged[key]; ok {
		return merged, nil
	}

	base, err := r.base(id, key)
	if err != nil {
		return nil, err
	}

	merged := theme.Merge(base, r.extensions[key]...)
	r.merged[key] = merged
	r.logger.Debug("merged theme cached",
		slog.String("theme", id),
		slog.Int("extensions", len(r.extensions[key])),
	)
	return merged, nil
}

func (r *Registry) base(id, key string) (*theme.Data, error) {
	if custom, ok := r.custom[key]; ok {
		return custom.data, nil
	}

	t, ok := builtinFor(key)
	if !ok {
		known := r.Names()
		return nil, &NotFoundError{ID: id, Known: known, Suggestion: suggest(id, known)}
	}

	if data, ok := r.builtins[key]; ok {
		return data, nil
	}
	data, err := r.load(t.Key())
	if err != nil {
		return nil, err
	}
	if err := validate.Complete(data).Err(t.String()); err != nil {
		return nil, err
	}
	r.builtins[key] = data
	r.logger.Debug("built-in theme loaded", slog.String("theme", t.String()))
	return data, nil
}

// Names returns the built-in theme names in declaration order followed by
// custom identifiers sorted case-insensitively.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(theme.Themes())+len(r.custom))
	for _, t := range theme.Themes() {
		names = append(names, t.String())
	}

	keys := make([]string, 0, len(r.custom))
	for key := range r.custom {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		names = append(names, r.custom[key].id)
	}
	return names
}

func builtinFor(key string) (theme.Theme, bool) {
	for _, t := range theme.Themes() {
		if theme.FoldID(t.Key()) == key {
			return t, true
		}
	}
	return 0, false
}

func suggest(id string, known []string) string {
	target := theme.FoldID(id)
	if target == "" {
		return ""
	}
	best := ""
	bestDist := suggestLimit(len(target)) + 1
	for _, name := range known {
		dist := levenshtein.ComputeDistance(target, theme.FoldID(name))
		if dist < bestDist {
			best, bestDist = name, dist
		}
	}
	return best
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
