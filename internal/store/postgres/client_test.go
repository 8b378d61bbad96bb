package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namecraft/internal/store"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	dsn := os.Getenv("NAMECRAFT_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("NAMECRAFT_TEST_POSTGRES_DSN not set")
	}

	ctx := context.Background()
	c, err := New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close(ctx) })

	require.NoError(t, c.EnsureSchema(ctx))
	_, err = c.pool.Exec(ctx, "TRUNCATE names")
	require.NoError(t, err)
	return c
}

func TestHistoryRoundTrip(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	first := store.NewRun(1, time.Now())
	first.Add("Elves", "Building", "The Silver Moon Temple")
	first.Add("Fantasy", "City", "Ashford")
	require.NoError(t, c.SaveNames(ctx, first.Records()))

	second := store.NewRun(2, time.Now())
	second.Add("Fantasy", "City", "Ashford")
	require.NoError(t, c.SaveNames(ctx, second.Records()))

	names, err := c.ListNames(ctx, store.Filter{Theme: "FANTASY"})
	require.NoError(t, err)
	require.Len(t, names, 2)
	assert.Equal(t, second.ID, names[0].RunID)

	runs, err := c.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, 2, runs[1].Names)

	results, err := c.Search(ctx, "moon", store.Filter{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "The Silver Moon Temple", results[0].Name)

	repeated, err := c.ListRepeatedNames(ctx, "city")
	require.NoError(t, err)
	require.Len(t, repeated, 1)
	assert.Equal(t, 2, repeated[0].Runs)

	rows, err := c.RunSQL(ctx, "SELECT count(*) AS n FROM names WHERE kind = $1", map[string]any{"1": "City"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.EqualValues(t, 2, rows[0]["n"])

	deleted, err := c.PruneRuns(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}

func TestRunSQL_RejectsWrites(t *testing.T) {
	c := newTestClient(t)
	_, err := c.RunSQL(context.Background(), "TRUNCATE names", nil)
	assert.ErrorIs(t, err, store.ErrNotReadOnly)
}
