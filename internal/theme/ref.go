package theme

import (
	"strings"

	"golang.org/x/text/cases"
)

// Ref points at a theme either through the built-in enumeration or through
// a string identifier (built-in key or custom theme id).
type Ref struct {
	builtin   Theme
	id        string
	isBuiltin bool
}

func Builtin(t Theme) Ref {
	return Ref{builtin: t, isBuiltin: true}
}

func Named(id string) Ref {
	return Ref{id: id}
}

// ParseRef returns a built-in reference when s names a built-in theme and a
// named reference otherwise.
func ParseRef(s string) Ref {
	if t, err := ParseTheme(s); err == nil {
		return Builtin(t)
	}
	return Named(strings.TrimSpace(s))
}

func (r Ref) IsBuiltin() bool {
	return r.isBuiltin
}

func (r Ref) Theme() Theme {
	return r.builtin
}

// ID is the identifier the registry resolves this reference under.
func (r Ref) ID() string {
	if r.isBuiltin {
		return r.builtin.Key()
	}
	return r.id
}

func (r Ref) String() string {
	if r.isBuiltin {
		return r.builtin.String()
	}
	return r.id
}

// Validate rejects built-in references outside the enumeration. Named
// references are checked by the registry at lookup time.
func (r Ref) Validate() error {
	if r.isBuiltin {
		return r.builtin.Validate()
	}
	return nil
}

// FoldID normalises an identifier for case-insensitive comparison.
func FoldID(id string) string {
	return cases.Fold().String(strings.TrimSpace(id))
}
