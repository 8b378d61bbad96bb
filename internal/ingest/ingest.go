// Package ingest turns the theme files named by a project config into
// generator configuration.
package ingest

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"namecraft/internal/config"
	"namecraft/internal/generator"
	"namecraft/internal/parser"
	"namecraft/internal/validate"
)

type Result struct {
	Config       generator.Config
	Definitions  []*parser.Definition
	FilesLoaded  int
	FilesSkipped int
	Warnings     []Warning
	Errors       []error
}

type Warning struct {
	Path  string
	Issue validate.Issue
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Path, w.Issue.Message)
}

type Options struct {
	// Strict reports warnings as errors.
	Strict bool
}

// Run parses every theme file under the configured paths. A file that fails
// to parse or validate is recorded in Result.Errors and left out of
// Result.Config; the remaining files are still loaded.
func Run(ctx context.Context, cfg *config.ProjectConfig, options Options) (*Result, error) {
	files, err := walkThemeFiles(cfg.Themes, cfg.Exclude)
	if err != nil {
		return nil, fmt.Errorf("walking theme files: %w", err)
	}

	result := &Result{}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, err := parser.FormatFromPath(path); err != nil {
			result.FilesSkipped++
			continue
		}

		def, err := parser.ParseFile(path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("parsing %s: %w", path, err))
			continue
		}

		report := def.Validate()
		for _, issue := range report.Issues {
			if issue.Severity == validate.SeverityWarn {
				result.Warnings = append(result.Warnings, Warning{Path: path, Issue: issue})
			}
		}
		if err := report.Err(def.Target()); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("validating %s: %w", path, err))
			continue
		}
		if options.Strict && len(report.Issues) > 0 {
			result.Errors = append(result.Errors, fmt.Errorf("validating %s: %d warnings in strict mode", path, len(report.Issues)))
			continue
		}

		result.add(def)
	}

	return result, nil
}

func (r *Result) add(def *parser.Definition) {
	r.FilesLoaded++
	r.Definitions = append(r.Definitions, def)
	if def.IsExtension() {
		r.Config.Extensions = append(r.Config.Extensions, generator.Extension{BaseID: def.Extends, Data: def.Data})
		return
	}
	r.Config.CustomThemes = append(r.Config.CustomThemes, generator.CustomTheme{ID: def.ID, Data: def.Data})
}

func walkThemeFiles(roots []string, excludes []string) ([]string, error) {
	excluded := make([]string, 0, len(excludes))
	for _, path := range excludes {
		if path == "" {
			continue
		}
		excluded = append(excluded, filepath.Clean(path))
	}

	var files []string
	for _, root := range roots {
		if root == "" {
			continue
		}
		root = filepath.Clean(root)
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() && isExcluded(path, excluded) {
				return filepath.SkipDir
			}
			if d.IsDir() {
				return nil
			}
			if strings.HasPrefix(d.Name(), ".") || isExcluded(path, excluded) {
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

func isExcluded(path string, excludes []string) bool {
	clean := filepath.Clean(path)
	for _, exclude := range excludes {
		if exclude == clean || strings.HasPrefix(clean, exclude+string(os.PathSeparator)) {
			return true
		}
	}
	return false
}
