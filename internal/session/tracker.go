package session

import "namecraft/internal/theme"

// Tracker remembers the names emitted per entity kind. Kinds are isolated:
// the same string may be tracked once under each kind.
type Tracker struct {
	seen map[theme.EntityKind]map[string]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{seen: make(map[theme.EntityKind]map[string]struct{})}
}

func (t *Tracker) IsUnique(kind theme.EntityKind, name string) bool {
	_, exists := t.seen[kind][name]
	return !exists
}

func (t *Tracker) Track(kind theme.EntityKind, name string) {
	names, ok := t.seen[kind]
	if !ok {
		names = make(map[string]struct{})
		t.seen[kind] = names
	}
	names[name] = struct{}{}
}

func (t *Tracker) Count(kind theme.EntityKind) int {
	return len(t.seen[kind])
}

func (t *Tracker) Clear() {
	clear(t.seen)
}
