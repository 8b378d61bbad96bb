package generator

import (
	"fmt"

	"namecraft/internal/registry"
	"namecraft/internal/theme"
)

type CustomTheme struct {
	ID   string
	Data *theme.Data
}

type Extension struct {
	BaseID string
	Data   *theme.Data
}

// Config lists the custom themes and extensions registered when a
// Generator is built. Custom themes are registered before extensions.
type Config struct {
	CustomThemes []CustomTheme
	Extensions   []Extension
}

// Register applies every entry to reg and reports all failures together.
func (c Config) Register(reg *registry.Registry) error {
	var errs []error
	for _, custom := range c.CustomThemes {
		if err := reg.RegisterCustomTheme(custom.ID, custom.Data); err != nil {
			errs = append(errs, fmt.Errorf("custom theme %q: %w", custom.ID, err))
		}
	}
	for _, ext := range c.Extensions {
		if err := reg.RegisterExtension(ext.BaseID, ext.Data); err != nil {
			errs = append(errs, fmt.Errorf("extension for %q: %w", ext.BaseID, err))
		}
	}
	if len(errs) > 0 {
		return &ConfigError{Errors: errs}
	}
	return nil
}
