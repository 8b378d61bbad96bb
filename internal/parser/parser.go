package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"namecraft/internal/theme"
	"namecraft/internal/validate"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Definition is one theme file: either a complete custom theme (ID set) or
// an extension fragment for an existing theme (Extends set).
type Definition struct {
	ID         string
	Extends    string
	Data       *theme.Data
	SourceFile string

	decode *validate.Report
}

var (
	ErrUnsupportedFormat = errors.New("unsupported theme file format")
	ErrInvalidJSON       = errors.New("invalid JSON in theme file")
	ErrInvalidYAML       = errors.New("invalid YAML in theme file")
	ErrMissingIdentity   = errors.New("theme file needs exactly one of 'id' or 'extends'")
)

func (d *Definition) IsExtension() bool {
	return d.Extends != ""
}

// Target is the identifier the definition registers under.
func (d *Definition) Target() string {
	if d.IsExtension() {
		return d.Extends
	}
	return d.ID
}

// Validate combines the issues found while decoding with the complete-theme
// or extension checks, whichever applies.
func (d *Definition) Validate() *validate.Report {
	report := &validate.Report{}
	report.Merge(d.decode)
	if d.IsExtension() {
		report.Merge(validate.Extension(d.Data))
	} else {
		report.Merge(validate.Complete(d.Data))
	}
	return report
}

func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func ParseFile(path string) (*Definition, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	def, err := Parse(data, format)
	if err != nil {
		return nil, err
	}
	def.SourceFile = path
	return def, nil
}

func Parse(content []byte, format Format) (*Definition, error) {
	var raw rawTheme
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(content))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	id := strings.TrimSpace(raw.ID)
	extends := strings.TrimSpace(raw.Extends)
	if (id == "") == (extends == "") {
		return nil, ErrMissingIdentity
	}

	report := &validate.Report{}
	return &Definition{
		ID:      id,
		Extends: extends,
		Data:    raw.toData(report),
		decode:  report,
	}, nil
}
