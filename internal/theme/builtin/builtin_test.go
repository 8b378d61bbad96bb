package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namecraft/internal/theme"
	"namecraft/internal/validate"
)

func TestLoad_AllBuiltinsAreComplete(t *testing.T) {
	for _, th := range theme.Themes() {
		t.Run(th.String(), func(t *testing.T) {
			data, err := Load(th.Key())
			require.NoError(t, err)

			report := validate.Complete(data)
			assert.Empty(t, report.Issues, "%v", report.Issues)
		})
	}
}

func TestLoad_CaseInsensitive(t *testing.T) {
	a, err := Load("ELVES")
	require.NoError(t, err)
	b, err := Load("elves")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestLoad_ReturnsFreshCopies(t *testing.T) {
	a, err := Load("fantasy")
	require.NoError(t, err)
	a.City.Prefixes[0] = "changed"

	b, err := Load("fantasy")
	require.NoError(t, err)
	assert.NotEqual(t, "changed", b.City.Prefixes[0])
}

func TestLoad_Unknown(t *testing.T) {
	_, err := Load("steampunk")
	assert.ErrorIs(t, err, ErrNotBuiltin)
}
