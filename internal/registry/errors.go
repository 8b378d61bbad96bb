package registry

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBlankID       = errors.New("theme identifier must not be blank")
	ErrThemeNotFound = errors.New("theme not found")
	ErrThemeConflict = errors.New("theme identifier conflict")
)

// NotFoundError lists every identifier the registry knew about at lookup
// time, plus the closest match when one is near enough.
type NotFoundError struct {
	ID         string
	Known      []string
	Suggestion string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("theme %q not found (known themes: %s)", e.ID, strings.Join(e.Known, ", "))
	if e.Suggestion != "" {
		msg += fmt.Sprintf("; did you mean %q?", e.Suggestion)
	}
	return msg
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrThemeNotFound
}

type ConflictError struct {
	ID       string
	Existing string
	BuiltIn  bool
}

func (e *ConflictError) Error() string {
	if e.BuiltIn {
		return fmt.Sprintf("theme id %q conflicts with built-in theme %q", e.ID, e.Existing)
	}
	return fmt.Sprintf("theme id %q is already registered as %q", e.ID, e.Existing)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrThemeConflict
}
