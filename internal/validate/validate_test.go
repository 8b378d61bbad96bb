package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namecraft/internal/theme"
	"namecraft/internal/theme/themetest"
)

func TestComplete_Valid(t *testing.T) {
	report := Complete(themetest.Complete("a", 2))
	assert.False(t, report.HasErrors())
	assert.Empty(t, report.Issues)
	assert.NoError(t, report.Err("a"))
}

func TestComplete_MissingSectionsReportedTogether(t *testing.T) {
	data := themetest.Complete("a", 1)
	data.City = nil
	data.Faction = nil

	report := Complete(data)
	require.True(t, report.HasErrors())
	assert.True(t, hasIssue(report.Issues, CodeMissingSection, "city"))
	assert.True(t, hasIssue(report.Issues, CodeMissingSection, "faction"))
	// pools under a missing section are not reported again
	assert.False(t, hasField(report.Issues, "city.prefixes"))
	assert.Len(t, report.Issues, 2)
}

func TestComplete_MissingBuildingTypeAndGender(t *testing.T) {
	data := themetest.Complete("a", 1)
	delete(data.Building.Types, theme.Library)
	delete(data.NPC.Genders, theme.Neutral)

	report := Complete(data)
	assert.True(t, hasIssue(report.Issues, CodeMissingBuildingType, "building.types.library"))
	assert.True(t, hasIssue(report.Issues, CodeMissingGender, "npc.neutral"))
}

func TestComplete_EmptyAndMissingPools(t *testing.T) {
	data := themetest.Complete("a", 1)
	data.Street.Cores = theme.Pool{}
	data.District.LocationTypes = nil

	report := Complete(data)
	assert.True(t, hasIssue(report.Issues, CodeEmptyPool, "street.cores"))
	assert.True(t, hasIssue(report.Issues, CodeMissingPool, "district.locationTypes"))
}

func TestComplete_BlankEntries(t *testing.T) {
	data := themetest.Complete("a", 2)
	data.Faction.Suffixes[1] = "   "
	data.City.Prefixes[0] = ""

	report := Complete(data)
	assert.True(t, hasIssue(report.Issues, CodeBlankEntry, "faction.suffixes[1]"))
	assert.True(t, hasIssue(report.Issues, CodeBlankEntry, "city.prefixes[0]"))

	err := report.Err("broken")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidThemeData))
	assert.Contains(t, err.Error(), "faction.suffixes[1]")
	assert.Contains(t, err.Error(), "city.prefixes[0]")
}

func TestComplete_NilData(t *testing.T) {
	assert.True(t, Complete(nil).HasErrors())
}

func TestComplete_DuplicatesOnlyWarn(t *testing.T) {
	data := themetest.Complete("a", 1)
	data.City.Cores = theme.Pool{"ton", "ton"}

	report := Complete(data)
	assert.False(t, report.HasErrors())
	require.Len(t, report.Issues, 1)
	assert.Equal(t, SeverityWarn, report.Issues[0].Severity)
	assert.Equal(t, CodeDuplicateEntry, report.Issues[0].Code)
}

func TestExtension(t *testing.T) {
	t.Run("partial fragment is valid", func(t *testing.T) {
		report := Extension(themetest.CityFragment("Ash", "ford"))
		assert.False(t, report.HasErrors())
	})

	t.Run("empty fragment is valid", func(t *testing.T) {
		assert.False(t, Extension(&theme.Data{}).HasErrors())
	})

	t.Run("blank entries rejected", func(t *testing.T) {
		report := Extension(themetest.CityFragment("Ash", " "))
		assert.True(t, hasIssue(report.Issues, CodeBlankEntry, "city.cores[0]"))
	})

	t.Run("nil fragment rejected", func(t *testing.T) {
		assert.True(t, Extension(nil).HasErrors())
	})
}

func TestError_MessageListsEverything(t *testing.T) {
	report := &Report{}
	report.Add(SeverityError, CodeMissingSection, "city", "city is required")
	report.Add(SeverityWarn, CodeDuplicateEntry, "npc.male.cores", "dup")
	report.Add(SeverityError, CodeEmptyPool, "street.cores", "street.cores must not be empty")

	err := report.Err("steampunk")
	var verr *Error
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Issues, 2)
	assert.True(t, strings.HasPrefix(err.Error(), `invalid theme data for "steampunk"`))
	assert.NotContains(t, err.Error(), "dup")
}

func hasIssue(issues []Issue, code, field string) bool {
	for _, issue := range issues {
		if issue.Code == code && issue.Field == field {
			return true
		}
	}
	return false
}

func hasField(issues []Issue, field string) bool {
	for _, issue := range issues {
		if issue.Field == field {
			return true
		}
	}
	return false
}
