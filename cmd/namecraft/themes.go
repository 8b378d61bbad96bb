package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"namecraft/internal/generator"
	"namecraft/internal/ingest"
	"namecraft/internal/theme"
)

func themesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themes",
		Short: "Inspect and validate themes",
	}
	cmd.AddCommand(themesListCmd())
	cmd.AddCommand(themesShowCmd())
	cmd.AddCommand(themesValidateCmd())
	return cmd
}

func themesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in and custom themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg, err := loadProject(configExplicit(cmd))
			if err != nil {
				return err
			}
			gen, err := newGenerator(ctx, cfg, nil)
			if err != nil {
				return err
			}
			for _, name := range gen.ThemeNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func themesShowCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show <theme>",
		Short: "Show pool sizes and name combinations for a theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			cfg, err := loadProject(configExplicit(cmd))
			if err != nil {
				return err
			}
			gen, err := newGenerator(ctx, cfg, nil)
			if err != nil {
				return err
			}
			desc, err := gen.DescribeTheme(theme.ParseRef(args[0]))
			if err != nil {
				return err
			}
			return printDescription(cmd.OutOrStdout(), desc, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func printDescription(out io.Writer, desc *generator.Description, asJSON bool) error {
	if asJSON {
		payload, err := json.MarshalIndent(struct {
			Theme        string               `json:"theme"`
			Pools        []generator.PoolSize `json:"pools"`
			Combinations map[string]int       `json:"combinations"`
		}{desc.Theme, desc.Pools, desc.CombinationsByName()}, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding description: %w", err)
		}
		fmt.Fprintln(out, string(payload))
		return nil
	}

	fmt.Fprintf(out, "Theme: %s\n\nCombinations:\n", desc.Theme)
	for _, kind := range theme.EntityKinds() {
		fmt.Fprintf(out, "  %-10s %d\n", kind, desc.Combinations[kind])
	}
	fmt.Fprintln(out, "\nPools:")
	for _, pool := range desc.Pools {
		fmt.Fprintf(out, "  %-40s %d\n", pool.Path, pool.Size)
	}
	return nil
}

func themesValidateCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "validate [path...]",
		Short: "Validate theme files (defaults to the configured theme paths)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemesValidate(cmd, args, strict)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as errors")
	return cmd
}

func runThemesValidate(cmd *cobra.Command, paths []string, strict bool) error {
	ctx := context.Background()
	out := cmd.OutOrStdout()

	cfg, err := loadProject(configExplicit(cmd))
	if err != nil {
		return err
	}
	if len(paths) > 0 {
		cfg.Themes = paths
		cfg.Exclude = nil
	}

	result, err := ingest.Run(ctx, cfg, ingest.Options{Strict: strict})
	if err != nil {
		return err
	}

	errs, err := themeErrors(result)
	if err != nil {
		return err
	}

	if len(errs) == 0 && len(result.Warnings) == 0 {
		fmt.Fprintf(out, "No issues found in %d theme files.\n", result.FilesLoaded)
		return nil
	}

	if len(errs) > 0 {
		fmt.Fprintf(out, "Errors (%d):\n", len(errs))
		for _, err := range errs {
			fmt.Fprintf(out, "  - %s\n", err)
		}
	}
	if len(result.Warnings) > 0 && !strict {
		if len(errs) > 0 {
			fmt.Fprintln(out, "")
		}
		fmt.Fprintf(out, "Warnings (%d):\n", len(result.Warnings))
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  - %s (%s)\n", w, w.Issue.Code)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation found errors")
	}
	return nil
}
