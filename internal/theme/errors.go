package theme

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidParameter = errors.New("invalid parameter")

// InvalidParameterError reports an out-of-range enum value together with the
// values that would have been accepted.
type InvalidParameterError struct {
	Parameter string
	Value     string
	Allowed   []string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s %q (allowed: %s)", e.Parameter, e.Value, strings.Join(e.Allowed, ", "))
}

func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

func invalidParameter(param, value string, allowed []string) error {
	return &InvalidParameterError{
		Parameter: param,
		Value:     value,
		Allowed:   append([]string(nil), allowed...),
	}
}
