package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"namecraft/internal/config"
)

const exampleTheme = `# Extension fragment: adds pools to the built-in Fantasy theme.
# Use "id: <name>" instead of "extends" for a complete custom theme.
extends: fantasy
city:
  prefixes: [Raven, Thorn]
district:
  locationTypes: [Commons]
`

func initCmd() *cobra.Command {
	var projectName string
	var dir string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a new namecraft project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(projectName) == "" {
				return fmt.Errorf("--name is required")
			}
			if err := runInit(dir, projectName); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", filepath.Join(dir, config.DefaultPath))
			return nil
		},
	}
	cmd.Flags().StringVar(&projectName, "name", "", "Project name")
	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to scaffold into")
	return cmd
}

func runInit(dir, projectName string) error {
	projectFile := filepath.Join(dir, config.DefaultPath)
	themePath := filepath.Join(dir, "themes", "example.yaml")
	if _, err := os.Stat(projectFile); err == nil {
		return fmt.Errorf("%s already exists", projectFile)
	}

	configContents := fmt.Sprintf("project: %s\nversion: 1\n\n# seed: 1234\n\ndatabase:\n  dsn: sqlite://./namecraft.db\n\nthemes:\n  - ./themes/\n\nexclude:\n  - ./themes/drafts/\n", projectName)
	if err := os.MkdirAll(filepath.Dir(themePath), 0o755); err != nil {
		return fmt.Errorf("creating themes directory: %w", err)
	}
	if err := os.WriteFile(projectFile, []byte(configContents), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", projectFile, err)
	}
	if _, err := os.Stat(themePath); err == nil {
		return nil
	}
	if err := os.WriteFile(themePath, []byte(exampleTheme), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", themePath, err)
	}
	return nil
}
