package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func inTempProject(t *testing.T) string {
	t.Helper()
	t.Setenv("NAMECRAFT_SEED", "")
	t.Setenv("NAMECRAFT_DATABASE_DSN", "")
	os.Unsetenv("NAMECRAFT_SEED")
	os.Unsetenv("NAMECRAFT_DATABASE_DSN")
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	inTempProject(t)

	first, err := runCLI(t, "generate", "city", "--seed", "42", "-n", "5")
	require.NoError(t, err)
	second, err := runCLI(t, "generate", "city", "--seed", "42", "-n", "5")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	names := lines(first)
	require.Len(t, names, 5)
	seen := make(map[string]bool)
	for _, name := range names {
		assert.NotEmpty(t, name)
		assert.False(t, seen[name], "duplicate %q", name)
		seen[name] = true
	}
}

func TestGenerateRejectsInvalidRequests(t *testing.T) {
	inTempProject(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown kind", []string{"generate", "castle"}},
		{"gender on city", []string{"generate", "city", "--gender", "Male"}},
		{"type on npc", []string{"generate", "npc", "--type", "Tavern"}},
		{"unknown gender", []string{"generate", "npc", "--gender", "Other"}},
		{"unknown theme", []string{"generate", "city", "--theme", "Atlantis"}},
		{"zero count", []string{"generate", "city", "-n", "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestGenerateMissingExplicitConfig(t *testing.T) {
	inTempProject(t)
	_, err := runCLI(t, "--config", "missing.yaml", "generate", "city")
	assert.Error(t, err)
}

func TestInitScaffoldsProject(t *testing.T) {
	dir := inTempProject(t)

	_, err := runCLI(t, "init")
	require.Error(t, err)

	out, err := runCLI(t, "init", "--name", "demo")
	require.NoError(t, err)
	assert.Contains(t, out, "namecraft.yaml")
	assert.FileExists(t, filepath.Join(dir, "namecraft.yaml"))
	assert.FileExists(t, filepath.Join(dir, "themes", "example.yaml"))

	_, err = runCLI(t, "init", "--name", "demo")
	assert.Error(t, err)

	out, err = runCLI(t, "themes", "validate")
	require.NoError(t, err)
	assert.Equal(t, "No issues found in 1 theme files.\n", out)
}

func TestThemesValidateReportsErrors(t *testing.T) {
	inTempProject(t)
	require.NoError(t, os.WriteFile("bad.json", []byte(`{"extends": "fantasy", "city": {"prefixes": [" "]}}`), 0o600))

	out, err := runCLI(t, "themes", "validate", "bad.json")
	require.Error(t, err)
	assert.Contains(t, out, "Errors (1):")
}

func TestThemesValidateReportsConflictsWithFileErrors(t *testing.T) {
	complete, err := os.ReadFile(filepath.Join("..", "..", "internal", "ingest", "testdata", "themes", "clockwork.yaml"))
	require.NoError(t, err)
	inTempProject(t)

	clash := strings.Replace(string(complete), "id: Clockwork", "id: Elves", 1)
	require.NoError(t, os.WriteFile("clash.yaml", []byte(clash), 0o600))
	require.NoError(t, os.WriteFile("bad.json", []byte(`{"extends": "fantasy", "city": {"prefixes": [" "]}}`), 0o600))

	out, err := runCLI(t, "themes", "validate", "clash.yaml", "bad.json")
	require.Error(t, err)
	assert.Contains(t, out, "Errors (2):")
	assert.Contains(t, out, "bad.json")
	assert.Contains(t, out, `conflicts with built-in theme "Elves"`)
}

func TestThemesListAndShow(t *testing.T) {
	inTempProject(t)

	out, err := runCLI(t, "themes", "list")
	require.NoError(t, err)
	assert.Equal(t, []string{"Fantasy", "Elves", "Dwarves"}, lines(out))

	out, err = runCLI(t, "themes", "show", "dwarves")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme: Dwarves")
	assert.Contains(t, out, "city.prefixes")
}

func TestGenerateSaveAndHistory(t *testing.T) {
	inTempProject(t)
	_, err := runCLI(t, "init", "--name", "demo")
	require.NoError(t, err)

	out, err := runCLI(t, "generate", "npc", "--seed", "7", "-n", "3", "--gender", "Female", "--save")
	require.NoError(t, err)
	names := lines(out)
	require.Len(t, names, 3)

	out, err = runCLI(t, "history", "list", "--kind", "NPC")
	require.NoError(t, err)
	for _, name := range names {
		assert.Contains(t, out, name)
	}

	out, err = runCLI(t, "history", "runs")
	require.NoError(t, err)
	assert.Contains(t, out, "seed=7 names=3")

	out, err = runCLI(t, "history", "sql", "SELECT count(*) AS n FROM names WHERE seed = ?", "--param", "1=7")
	require.NoError(t, err)
	assert.Contains(t, out, `"n": 3`)

	_, err = runCLI(t, "history", "sql", "DELETE FROM names")
	assert.Error(t, err)
}

func TestParseParamPairs(t *testing.T) {
	params, err := parseParamPairs([]string{"1=7", "", " 2 = abc "})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"1": "7", "2": "abc"}, params)

	_, err = parseParamPairs([]string{"novalue"})
	assert.Error(t, err)
	_, err = parseParamPairs([]string{"=x"})
	assert.Error(t, err)
}
