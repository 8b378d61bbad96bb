package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namecraft/internal/generator"
	"namecraft/internal/registry"
	"namecraft/internal/store"
	"namecraft/internal/theme"
	"namecraft/internal/theme/themetest"
)

type mockHistory struct {
	store.Store

	saved        []store.Record
	saveErr      error
	searchResult []store.SearchResult

	lastQuery  string
	lastFilter store.Filter
}

func (m *mockHistory) SaveNames(ctx context.Context, records []store.Record) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, records...)
	return nil
}

func (m *mockHistory) Search(ctx context.Context, query string, filter store.Filter) ([]store.SearchResult, error) {
	m.lastQuery = query
	m.lastFilter = filter
	return m.searchResult, nil
}

func newTestServer(t *testing.T, history store.Store) *Server {
	t.Helper()
	gen, err := generator.New(
		generator.WithSeed(7),
		generator.WithConfig(generator.Config{
			CustomThemes: []generator.CustomTheme{{ID: "Tiny", Data: themetest.Complete("t", 1)}},
		}),
	)
	require.NoError(t, err)
	return NewServer(gen, history, "test")
}

func TestGenerateNames(t *testing.T) {
	server := newTestServer(t, nil)

	_, output, err := server.handleGenerateNames(context.Background(), nil, GenerateNamesInput{
		Kind: "npc", Theme: "elves", Count: 3, Gender: "female",
	})
	require.NoError(t, err)
	assert.Len(t, output.Names, 3)
	assert.Equal(t, int64(7), output.Seed)
	assert.Empty(t, output.RunID)

	reference, err := generator.New(generator.WithSeed(7))
	require.NoError(t, err)
	for _, name := range output.Names {
		want, err := reference.NPCNameWithGender(theme.Builtin(theme.Elves), theme.Female)
		require.NoError(t, err)
		assert.Equal(t, want, name)
	}
}

func TestGenerateNames_Defaults(t *testing.T) {
	server := newTestServer(t, nil)

	_, output, err := server.handleGenerateNames(context.Background(), nil, GenerateNamesInput{Kind: "City"})
	require.NoError(t, err)
	assert.Len(t, output.Names, 1)
}

func TestGenerateNames_InvalidInput(t *testing.T) {
	server := newTestServer(t, nil)

	tests := []struct {
		name  string
		input GenerateNamesInput
		is    error
	}{
		{"missing kind", GenerateNamesInput{}, nil},
		{"unknown kind", GenerateNamesInput{Kind: "Castle"}, theme.ErrInvalidParameter},
		{"unknown gender", GenerateNamesInput{Kind: "NPC", Gender: "robot"}, theme.ErrInvalidParameter},
		{"gender on city", GenerateNamesInput{Kind: "City", Gender: "Male"}, nil},
		{"building type on npc", GenerateNamesInput{Kind: "NPC", BuildingType: "Inn"}, nil},
		{"unknown building type", GenerateNamesInput{Kind: "Building", BuildingType: "Castle"}, theme.ErrInvalidParameter},
		{"unknown theme", GenerateNamesInput{Kind: "City", Theme: "atlantis"}, registry.ErrThemeNotFound},
		{"count too large", GenerateNamesInput{Kind: "City", Count: 101}, nil},
		{"save without history", GenerateNamesInput{Kind: "City", Save: true}, errNoHistory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := server.handleGenerateNames(context.Background(), nil, tt.input)
			require.Error(t, err)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestGenerateNames_ExhaustionAndReset(t *testing.T) {
	server := newTestServer(t, nil)
	ctx := context.Background()
	input := GenerateNamesInput{Kind: "City", Theme: "tiny"}

	_, first, err := server.handleGenerateNames(ctx, nil, input)
	require.NoError(t, err)

	_, _, err = server.handleGenerateNames(ctx, nil, input)
	assert.ErrorIs(t, err, generator.ErrPoolExhausted)

	_, reset, err := server.handleResetSession(ctx, nil, ResetSessionInput{})
	require.NoError(t, err)
	assert.Equal(t, int64(7), reset.Seed)

	_, again, err := server.handleGenerateNames(ctx, nil, input)
	require.NoError(t, err)
	assert.Equal(t, first.Names, again.Names)
}

func TestGenerateNames_Save(t *testing.T) {
	history := &mockHistory{}
	server := newTestServer(t, history)

	_, output, err := server.handleGenerateNames(context.Background(), nil, GenerateNamesInput{
		Kind: "Building", Theme: "Dwarves", BuildingType: "smithy", Count: 2, Save: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, output.RunID)
	require.Len(t, history.saved, 2)
	assert.Equal(t, output.RunID, history.saved[0].RunID)
	assert.Equal(t, "Dwarves", history.saved[0].Theme)
	assert.Equal(t, "Building", history.saved[0].Kind)
	assert.Equal(t, output.Names[1], history.saved[1].Name)
}

func TestGenerateNames_SaveError(t *testing.T) {
	history := &mockHistory{saveErr: errors.New("disk full")}
	server := newTestServer(t, history)

	_, _, err := server.handleGenerateNames(context.Background(), nil, GenerateNamesInput{Kind: "City", Save: true})
	assert.ErrorContains(t, err, "disk full")
}

func TestListThemes(t *testing.T) {
	server := newTestServer(t, nil)

	_, output, err := server.handleListThemes(context.Background(), nil, ListThemesInput{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Fantasy", "Elves", "Dwarves", "Tiny"}, output.Themes)
}

func TestDescribeTheme(t *testing.T) {
	server := newTestServer(t, nil)

	_, output, err := server.handleDescribeTheme(context.Background(), nil, DescribeThemeInput{Theme: "tiny"})
	require.NoError(t, err)
	assert.Equal(t, "tiny", output.Theme)
	assert.Len(t, output.Pools, 43)
	assert.Equal(t, 1, output.Combinations["City"])
	assert.Equal(t, 3, output.Combinations["NPC"])

	_, _, err = server.handleDescribeTheme(context.Background(), nil, DescribeThemeInput{})
	assert.Error(t, err)
}

func TestSearchHistory(t *testing.T) {
	history := &mockHistory{
		searchResult: []store.SearchResult{
			{Record: store.Record{RunID: "r1", Theme: "Elves", Kind: "City", Name: "Moonhollow"}, Score: 1.5},
		},
	}
	server := newTestServer(t, history)

	_, output, err := server.handleSearchHistory(context.Background(), nil, SearchHistoryInput{Query: "moon*", Theme: "Elves", Limit: 5})
	require.NoError(t, err)
	require.Len(t, output.Results, 1)
	assert.Equal(t, "Moonhollow", output.Results[0].Name)
	assert.Equal(t, "moon*", history.lastQuery)
	assert.Equal(t, store.Filter{Theme: "Elves", Limit: 5}, history.lastFilter)

	_, _, err = server.handleSearchHistory(context.Background(), nil, SearchHistoryInput{})
	assert.Error(t, err)
}

func TestSearchHistory_WithoutStore(t *testing.T) {
	server := newTestServer(t, nil)

	_, _, err := server.handleSearchHistory(context.Background(), nil, SearchHistoryInput{Query: "moon"})
	assert.ErrorIs(t, err, errNoHistory)
}
