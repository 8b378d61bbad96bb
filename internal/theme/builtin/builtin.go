// Package builtin provides the theme data shipped with namecraft. Each
// built-in theme lives in an embedded JSON file named after its key.
package builtin

import (
	"embed"
	"errors"
	"fmt"

	"namecraft/internal/parser"
	"namecraft/internal/theme"
)

//go:embed data/*.json
var files embed.FS

var ErrNotBuiltin = errors.New("not a built-in theme")

// Load returns the complete theme data for a built-in key such as "elves".
// The returned data is freshly decoded on every call.
func Load(key string) (*theme.Data, error) {
	t, ok := lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotBuiltin, key)
	}

	name := "data/" + t.Key() + ".json"
	content, err := files.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading built-in theme %s: %w", t, err)
	}

	def, err := parser.Parse(content, parser.FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("parsing built-in theme %s: %w", t, err)
	}
	if err := def.Validate().Err(t.String()); err != nil {
		return nil, err
	}
	return def.Data, nil
}

func lookup(key string) (theme.Theme, bool) {
	folded := theme.FoldID(key)
	for _, t := range theme.Themes() {
		if theme.FoldID(t.Key()) == folded {
			return t, true
		}
	}
	return 0, false
}
