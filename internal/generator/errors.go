package generator

import (
	"errors"
	"fmt"
	"strings"

	"namecraft/internal/theme"
)

var ErrPoolExhausted = errors.New("name pool exhausted")

// PoolExhaustedError is returned when every attempt of one generation call
// produced a name already emitted for the same kind. Reset the generator or
// switch seed or theme to recover.
type PoolExhaustedError struct {
	Kind     theme.EntityKind
	Theme    string
	Attempts int
}

func (e *PoolExhaustedError) Error() string {
	return fmt.Sprintf("name pool exhausted for %s in theme %q after %d attempts", e.Kind, e.Theme, e.Attempts)
}

func (e *PoolExhaustedError) Is(target error) bool {
	return target == ErrPoolExhausted
}

// ConfigError collects every registration failure from a Config.
type ConfigError struct {
	Errors []error
}

func (e *ConfigError) Error() string {
	messages := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("theme configuration invalid (%d errors): %s", len(e.Errors), strings.Join(messages, "; "))
}

func (e *ConfigError) Unwrap() []error {
	return e.Errors
}
