package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namecraft/internal/theme"
	"namecraft/internal/theme/themetest"
	"namecraft/internal/validate"
)

type countingLoader struct {
	calls map[string]int
	err   error
}

func (c *countingLoader) load(key string) (*theme.Data, error) {
	if c.calls == nil {
		c.calls = make(map[string]int)
	}
	c.calls[key]++
	if c.err != nil {
		return nil, c.err
	}
	return themetest.Complete(key, 2), nil
}

func newRegistry(t *testing.T) (*Registry, *countingLoader) {
	t.Helper()
	loader := &countingLoader{}
	return New(loader.load), loader
}

func TestTheme_BuiltinLoadedLazilyOnce(t *testing.T) {
	r, loader := newRegistry(t)
	assert.Empty(t, loader.calls)

	a, err := r.Theme("Elves")
	require.NoError(t, err)
	b, err := r.Theme("ELVES")
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Equal(t, 1, loader.calls["elves"])
	assert.Equal(t, theme.Pool{"elvescityP0", "elvescityP1"}, a.City.Prefixes)
}

func TestTheme_LoaderErrorNotCached(t *testing.T) {
	loader := &countingLoader{err: errors.New("boom")}
	r := New(loader.load)

	_, err := r.Theme("fantasy")
	require.Error(t, err)

	loader.err = nil
	_, err = r.Theme("fantasy")
	require.NoError(t, err)
	assert.Equal(t, 2, loader.calls["fantasy"])
}

func TestTheme_InvalidBuiltinData(t *testing.T) {
	r := New(func(key string) (*theme.Data, error) {
		data := themetest.Complete(key, 1)
		data.Street = nil
		return data, nil
	})

	_, err := r.Theme("dwarves")
	assert.ErrorIs(t, err, validate.ErrInvalidThemeData)
}

func TestTheme_NotFound(t *testing.T) {
	r, _ := newRegistry(t)
	require.NoError(t, r.RegisterCustomTheme("Steampunk", themetest.Complete("s", 1)))

	_, err := r.Theme("elvs")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrThemeNotFound))

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, []string{"Fantasy", "Elves", "Dwarves", "Steampunk"}, nf.Known)
	assert.Equal(t, "Elves", nf.Suggestion)
	assert.Contains(t, err.Error(), "Steampunk")

	_, err = r.Theme("zzzzzzzzzzzz")
	require.True(t, errors.As(err, &nf))
	assert.Empty(t, nf.Suggestion)
}

func TestRegisterCustomTheme_CaseInsensitiveLookup(t *testing.T) {
	r, _ := newRegistry(t)
	require.NoError(t, r.RegisterCustomTheme("steampunk", themetest.Complete("s", 1)))

	for _, id := range []string{"STEAMPUNK", "steampunk", "Steampunk"} {
		data, err := r.Theme(id)
		require.NoError(t, err, id)
		assert.Equal(t, theme.Pool{"scityP0"}, data.City.Prefixes)
	}
}

func TestRegisterCustomTheme_Conflicts(t *testing.T) {
	r, _ := newRegistry(t)
	require.NoError(t, r.RegisterCustomTheme("Steampunk", themetest.Complete("s", 1)))

	tests := []struct {
		name    string
		id      string
		builtIn bool
	}{
		{"custom same case", "Steampunk", false},
		{"custom other case", "STEAMPUNK", false},
		{"builtin", "elves", true},
		{"builtin display name", "Fantasy", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := r.RegisterCustomTheme(tt.id, themetest.Complete("x", 1))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrThemeConflict)

			var ce *ConflictError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.builtIn, ce.BuiltIn)
		})
	}
}

func TestRegister_BlankID(t *testing.T) {
	r, _ := newRegistry(t)
	assert.ErrorIs(t, r.RegisterCustomTheme("  ", themetest.Complete("x", 1)), ErrBlankID)
	assert.ErrorIs(t, r.RegisterExtension("", themetest.CityFragment("A")), ErrBlankID)
}

func TestRegisterCustomTheme_InvalidDataRejected(t *testing.T) {
	r, _ := newRegistry(t)
	data := themetest.Complete("x", 1)
	data.NPC = nil

	err := r.RegisterCustomTheme("broken", data)
	assert.ErrorIs(t, err, validate.ErrInvalidThemeData)

	_, err = r.Theme("broken")
	assert.ErrorIs(t, err, ErrThemeNotFound)
}

func TestRegisterCustomTheme_CopiesInput(t *testing.T) {
	r, _ := newRegistry(t)
	data := themetest.Complete("s", 1)
	require.NoError(t, r.RegisterCustomTheme("steampunk", data))

	data.City.Prefixes[0] = "mutated"

	merged, err := r.Theme("steampunk")
	require.NoError(t, err)
	assert.Equal(t, theme.Pool{"scityP0"}, merged.City.Prefixes)
}

func TestRegisterExtension_MergesInRegistrationOrder(t *testing.T) {
	r, _ := newRegistry(t)
	require.NoError(t, r.RegisterExtension("Elves", themetest.CityFragment("One")))
	require.NoError(t, r.RegisterExtension("elves", themetest.CityFragment("Two", "core")))

	data, err := r.Theme("elves")
	require.NoError(t, err)
	assert.Equal(t, theme.Pool{"elvescityP0", "elvescityP1", "One", "Two"}, data.City.Prefixes)
	assert.Equal(t, theme.Pool{"elvescityC0", "elvescityC1", "core"}, data.City.Cores)
	assert.Equal(t, theme.Pool{"elvescityS0", "elvescityS1"}, data.City.Suffixes)
}

func TestRegisterExtension_InvalidatesCache(t *testing.T) {
	r, _ := newRegistry(t)
	before, err := r.Theme("fantasy")
	require.NoError(t, err)

	require.NoError(t, r.RegisterExtension("fantasy", themetest.CityFragment("Late")))

	after, err := r.Theme("fantasy")
	require.NoError(t, err)
	assert.NotSame(t, before, after)
	assert.Len(t, before.City.Prefixes, 2)
	assert.Equal(t, theme.Pool{"fantasycityP0", "fantasycityP1", "Late"}, after.City.Prefixes)
}

func TestRegisterExtension_ForUnknownBase(t *testing.T) {
	r, _ := newRegistry(t)
	require.NoError(t, r.RegisterExtension("steampunk", themetest.CityFragment("Gear")))

	_, err := r.Theme("steampunk")
	assert.ErrorIs(t, err, ErrThemeNotFound)

	require.NoError(t, r.RegisterCustomTheme("Steampunk", themetest.Complete("s", 1)))
	data, err := r.Theme("steampunk")
	require.NoError(t, err)
	assert.Equal(t, theme.Pool{"scityP0", "Gear"}, data.City.Prefixes)
}

func TestRegisterExtension_InvalidFragment(t *testing.T) {
	r, _ := newRegistry(t)
	err := r.RegisterExtension("elves", themetest.CityFragment(""))
	assert.ErrorIs(t, err, validate.ErrInvalidThemeData)
}

func TestMergeCompleteness_EveryPool(t *testing.T) {
	r, _ := newRegistry(t)
	ext1 := themetest.Complete("e1", 1)
	ext2 := themetest.Complete("e2", 3)
	require.NoError(t, r.RegisterExtension("dwarves", ext1))
	require.NoError(t, r.RegisterExtension("dwarves", ext2))

	merged, err := r.Theme("dwarves")
	require.NoError(t, err)
	base := themetest.Complete("dwarves", 2)

	merged.EachPool(func(path string, pool theme.Pool) {
		b, _ := base.Pool(path)
		e1, _ := ext1.Pool(path)
		e2, _ := ext2.Pool(path)
		assert.Len(t, pool, len(b)+len(e1)+len(e2), path)
		want := append(append(append(theme.Pool{}, b...), e1...), e2...)
		assert.Equal(t, want, pool, path)
	})
}

func TestNames(t *testing.T) {
	r, _ := newRegistry(t)
	assert.Equal(t, []string{"Fantasy", "Elves", "Dwarves"}, r.Names())

	require.NoError(t, r.RegisterCustomTheme("zeta", themetest.Complete("z", 1)))
	require.NoError(t, r.RegisterCustomTheme("Alpha", themetest.Complete("a", 1)))
	assert.Equal(t, []string{"Fantasy", "Elves", "Dwarves", "Alpha", "zeta"}, r.Names())
}
