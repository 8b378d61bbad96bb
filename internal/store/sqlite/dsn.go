package sqlite

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

const scheme = "sqlite://"

// parseDSN maps sqlite://<path>[?query] onto the driver's file name form.
// Relative paths are anchored at the working directory.
func parseDSN(dsn string) (string, error) {
	if !strings.HasPrefix(dsn, scheme) {
		return "", fmt.Errorf("invalid sqlite DSN scheme, expected %s", scheme)
	}

	rest := strings.TrimPrefix(dsn, scheme)
	if rest == "" {
		return "", fmt.Errorf("sqlite DSN has no path")
	}
	if rest == ":memory:" {
		return ":memory:", nil
	}

	path, query, _ := strings.Cut(rest, "?")
	unescaped, err := url.PathUnescape(path)
	if err != nil {
		return "", fmt.Errorf("unescaping path: %w", err)
	}
	path = unescaped

	if !filepath.IsAbs(path) && !strings.HasPrefix(path, "./") {
		path = "./" + path
	}
	if query != "" {
		return path + "?" + query, nil
	}
	return path, nil
}
