package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "namecraft.yaml"

type ProjectConfig struct {
	Project  string         `yaml:"project"`
	Version  int            `yaml:"version"`
	Seed     *int64         `yaml:"seed"`
	Database DatabaseConfig `yaml:"database"`
	Themes   []string       `yaml:"themes"`
	Exclude  []string       `yaml:"exclude"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// Overrides are read from the environment and win over the file.
type Overrides struct {
	Seed        *int64 `env:"NAMECRAFT_SEED"`
	DatabaseDSN string `env:"NAMECRAFT_DATABASE_DSN"`
}

func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	overrides, err := LoadOverrides()
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}
	cfg.Apply(overrides)

	if err := validateProjectConfig(&cfg); err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return &cfg, nil
}

// LoadDotEnv loads variables from a .env file into the process environment.
// A missing file is not an error; variables already set are kept.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading env file: %w", err)
	}
	return nil
}

func LoadOverrides() (Overrides, error) {
	var o Overrides
	if err := env.Parse(&o); err != nil {
		return Overrides{}, fmt.Errorf("parse env: %w", err)
	}
	return o, nil
}

func (c *ProjectConfig) Apply(o Overrides) {
	if o.Seed != nil {
		seed := *o.Seed
		c.Seed = &seed
	}
	if strings.TrimSpace(o.DatabaseDSN) != "" {
		c.Database.DSN = o.DatabaseDSN
	}
}

func validateProjectConfig(cfg *ProjectConfig) error {
	if strings.TrimSpace(cfg.Project) == "" {
		return fmt.Errorf("project name is required")
	}
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}
	if dsn := strings.TrimSpace(cfg.Database.DSN); dsn != "" && !supportedDSN(dsn) {
		return fmt.Errorf("unsupported database dsn: %s", dsn)
	}

	seen := make(map[string]struct{})
	for i, path := range cfg.Themes {
		if strings.TrimSpace(path) == "" {
			return fmt.Errorf("theme path %d is empty", i)
		}
		if _, exists := seen[path]; exists {
			return fmt.Errorf("duplicate theme path: %s", path)
		}
		seen[path] = struct{}{}
	}

	return nil
}

func supportedDSN(dsn string) bool {
	for _, prefix := range []string{"sqlite://", "postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, prefix) {
			return true
		}
	}
	return false
}
