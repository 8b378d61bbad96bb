package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"namecraft/internal/config"
	"namecraft/internal/generator"
	"namecraft/internal/ingest"
)

// loadProject reads the project config. Without an explicit --config a
// missing default file yields an empty project so generation works from
// any directory with the built-in themes.
func loadProject(explicit bool) (*config.ProjectConfig, error) {
	cfg, err := config.LoadProjectConfig(configPath)
	if err == nil {
		return cfg, nil
	}
	if explicit || !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg = &config.ProjectConfig{Version: 1}
	overrides, err := config.LoadOverrides()
	if err != nil {
		return nil, err
	}
	cfg.Apply(overrides)
	return cfg, nil
}

// loadThemes ingests the configured theme files. Any file error fails the
// command; warnings are logged.
func loadThemes(ctx context.Context, cfg *config.ProjectConfig) (generator.Config, error) {
	result, err := ingest.Run(ctx, cfg, ingest.Options{})
	if err != nil {
		return generator.Config{}, err
	}
	for _, w := range result.Warnings {
		logger.Warn("theme file warning", slog.String("file", w.Path), slog.String("issue", w.Issue.Message))
	}
	errs, err := themeErrors(result)
	if err != nil {
		return generator.Config{}, err
	}
	if len(errs) > 0 {
		return generator.Config{}, fmt.Errorf("loading theme files: %w", errors.Join(errs...))
	}
	logger.Debug("theme files loaded",
		slog.Int("files", result.FilesLoaded),
		slog.Int("custom_themes", len(result.Config.CustomThemes)),
		slog.Int("extensions", len(result.Config.Extensions)),
	)
	return result.Config, nil
}

// themeErrors returns the file errors of result followed by the
// registration errors of the files that did load, so identifier conflicts
// are reported alongside broken files.
func themeErrors(result *ingest.Result) ([]error, error) {
	errs := append([]error(nil), result.Errors...)
	_, err := generator.New(generator.WithSeed(0), generator.WithConfig(result.Config))
	if err == nil {
		return errs, nil
	}
	var cfgErr *generator.ConfigError
	if !errors.As(err, &cfgErr) {
		return nil, err
	}
	return append(errs, cfgErr.Errors...), nil
}

// newGenerator builds a generator from the project. seed wins over the
// configured seed when set.
func newGenerator(ctx context.Context, cfg *config.ProjectConfig, seed *int64) (*generator.Generator, error) {
	themes, err := loadThemes(ctx, cfg)
	if err != nil {
		return nil, err
	}

	opts := []generator.Option{
		generator.WithConfig(themes),
		generator.WithLogger(logger),
	}
	switch {
	case seed != nil:
		opts = append(opts, generator.WithSeed(*seed))
	case cfg.Seed != nil:
		opts = append(opts, generator.WithSeed(*cfg.Seed))
	}

	gen, err := generator.New(opts...)
	if err != nil {
		return nil, err
	}
	logger.Debug("generator ready", slog.Int64("seed", gen.Seed()))
	return gen, nil
}
