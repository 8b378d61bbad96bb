// Package validate checks theme data before it reaches the registry. Every
// problem is collected into a Report so callers see all of them at once.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"namecraft/internal/theme"
)

type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warning"
)

const (
	CodeMissingSection      = "missing_section"
	CodeMissingGender       = "missing_gender"
	CodeMissingBuildingType = "missing_building_type"
	CodeMissingPool         = "missing_pool"
	CodeEmptyPool           = "empty_pool"
	CodeBlankEntry          = "blank_entry"
	CodeNullEntry           = "null_entry"
	CodeUnknownKey          = "unknown_key"
	CodeDuplicateEntry      = "duplicate_entry"
)

var ErrInvalidThemeData = errors.New("invalid theme data")

type Issue struct {
	Severity Severity
	Code     string
	Field    string
	Message  string
}

type Report struct {
	Issues []Issue
}

func (r *Report) Add(severity Severity, code, field, message string) {
	r.Issues = append(r.Issues, Issue{Severity: severity, Code: code, Field: field, Message: message})
}

// Merge appends other's issues after r's.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Issues = append(r.Issues, other.Issues...)
}

func (r *Report) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Err returns an *Error carrying the error-severity issues, or nil when there
// are none.
func (r *Report) Err(subject string) error {
	var errs []Issue
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			errs = append(errs, issue)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return &Error{Subject: subject, Issues: errs}
}

// Error is the aggregated validation failure for one theme or fragment.
type Error struct {
	Subject string
	Issues  []Issue
}

func (e *Error) Error() string {
	messages := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		messages = append(messages, issue.Message)
	}
	return fmt.Sprintf("invalid theme data for %q: %s", e.Subject, strings.Join(messages, "; "))
}

func (e *Error) Is(target error) bool {
	return target == ErrInvalidThemeData
}

// Complete validates data as a full theme: every section, gender, building
// type and pool must be present and non-empty, and no entry may be blank.
func Complete(data *theme.Data) *Report {
	report := &Report{}
	if data == nil {
		report.Add(SeverityError, CodeMissingSection, "", "theme data is required")
		return report
	}

	var skip []string
	missing := func(code, field string) {
		report.Add(SeverityError, code, field, fmt.Sprintf("%s is required", field))
		skip = append(skip, field+".")
	}

	if data.NPC == nil {
		missing(CodeMissingSection, "npc")
	} else {
		for _, g := range theme.Genders() {
			if _, ok := data.NPC.Genders[g]; !ok {
				missing(CodeMissingGender, "npc."+g.Key())
			}
		}
	}
	if data.Building == nil {
		missing(CodeMissingSection, "building")
	} else {
		for _, bt := range theme.BuildingTypes() {
			if _, ok := data.Building.Types[bt]; !ok {
				missing(CodeMissingBuildingType, "building.types."+bt.Key())
			}
		}
	}
	if data.City == nil {
		missing(CodeMissingSection, "city")
	}
	if data.District == nil {
		missing(CodeMissingSection, "district")
	}
	if data.Street == nil {
		missing(CodeMissingSection, "street")
	}
	if data.Faction == nil {
		missing(CodeMissingSection, "faction")
	}

	data.EachPool(func(path string, pool theme.Pool) {
		for _, prefix := range skip {
			if strings.HasPrefix(path, prefix) {
				return
			}
		}
		checkPool(report, path, pool, true)
	})
	return report
}

// Extension validates a partial fragment. Absent or empty pools are fine;
// entries of non-empty pools must not be blank.
func Extension(data *theme.Data) *Report {
	report := &Report{}
	if data == nil {
		report.Add(SeverityError, CodeMissingSection, "", "extension data is required")
		return report
	}
	data.EachPool(func(path string, pool theme.Pool) {
		checkPool(report, path, pool, false)
	})
	return report
}

func checkPool(report *Report, path string, pool theme.Pool, required bool) {
	if required {
		if pool == nil {
			report.Add(SeverityError, CodeMissingPool, path, fmt.Sprintf("%s is required", path))
			return
		}
		if len(pool) == 0 {
			report.Add(SeverityError, CodeEmptyPool, path, fmt.Sprintf("%s must not be empty", path))
			return
		}
	}

	seen := make(map[string]struct{}, len(pool))
	for i, entry := range pool {
		if strings.TrimSpace(entry) == "" {
			field := fmt.Sprintf("%s[%d]", path, i)
			report.Add(SeverityError, CodeBlankEntry, field, fmt.Sprintf("%s must not be blank", field))
			continue
		}
		if _, dup := seen[entry]; dup {
			report.Add(SeverityWarn, CodeDuplicateEntry, path, fmt.Sprintf("%s contains %q more than once", path, entry))
			continue
		}
		seen[entry] = struct{}{}
	}
}
