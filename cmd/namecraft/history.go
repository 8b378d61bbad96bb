package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"namecraft/internal/store"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse names saved with generate --save",
	}
	cmd.AddCommand(historyListCmd())
	cmd.AddCommand(historyRunsCmd())
	cmd.AddCommand(historySearchCmd())
	cmd.AddCommand(historyRepeatsCmd())
	cmd.AddCommand(historyPruneCmd())
	cmd.AddCommand(historySQLCmd())
	return cmd
}

// withDB opens the configured history store for the duration of fn.
func withDB(cmd *cobra.Command, fn func(ctx context.Context, db store.Store) error) error {
	ctx := context.Background()

	cfg, err := loadProject(configExplicit(cmd))
	if err != nil {
		return err
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	return fn(ctx, db)
}

func addFilterFlags(cmd *cobra.Command, filter *store.Filter) {
	cmd.Flags().StringVar(&filter.RunID, "run", "", "Run id to filter")
	cmd.Flags().StringVar(&filter.Theme, "theme", "", "Theme to filter")
	cmd.Flags().StringVar(&filter.Kind, "kind", "", "Entity kind to filter")
	cmd.Flags().IntVar(&filter.Limit, "limit", store.DefaultLimit, "Maximum rows")
}

func historyListCmd() *cobra.Command {
	var filter store.Filter
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved names, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd, func(ctx context.Context, db store.Store) error {
				records, err := db.ListNames(ctx, filter)
				if err != nil {
					return err
				}
				if len(records) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No names saved.")
					return nil
				}
				for _, r := range records {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %-8s %-10s %s\n", r.CreatedAt.Local().Format(time.DateTime), r.Kind, r.Theme, r.Name)
				}
				return nil
			})
		},
	}
	addFilterFlags(cmd, &filter)
	return cmd
}

func historyRunsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List saved generation runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd, func(ctx context.Context, db store.Store) error {
				runs, err := db.ListRuns(ctx, limit)
				if err != nil {
					return err
				}
				for _, run := range runs {
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  seed=%d names=%d\n", run.RunID, run.CreatedAt.Local().Format(time.DateTime), run.Seed, run.Names)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum runs")
	return cmd
}

func historySearchCmd() *cobra.Command {
	var filter store.Filter
	cmd := &cobra.Command{
		Use:   "search <text>",
		Short: "Full-text search over saved names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return withDB(cmd, func(ctx context.Context, db store.Store) error {
				results, err := db.Search(ctx, query, filter)
				if err != nil {
					return err
				}
				if len(results) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No matches found.")
					return nil
				}
				for _, r := range results {
					fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) [%s] score=%.2f\n", r.Name, r.Kind, r.Theme, r.Score)
				}
				return nil
			})
		},
	}
	addFilterFlags(cmd, &filter)
	return cmd
}

func historyRepeatsCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "repeats",
		Short: "List names that were generated in more than one run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd, func(ctx context.Context, db store.Store) error {
				repeated, err := db.ListRepeatedNames(ctx, kind)
				if err != nil {
					return err
				}
				if len(repeated) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No repeated names.")
					return nil
				}
				for _, r := range repeated {
					fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s (%d runs)\n", r.Kind, r.Name, r.Runs)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "Entity kind to filter")
	return cmd
}

func historyPruneCmd() *cobra.Command {
	var keep int
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete all but the most recent runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd, func(ctx context.Context, db store.Store) error {
				deleted, err := db.PruneRuns(ctx, keep)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d names.\n", deleted)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&keep, "keep", 10, "Number of recent runs to keep")
	return cmd
}

func historySQLCmd() *cobra.Command {
	var paramPairs []string
	cmd := &cobra.Command{
		Use:   "sql <query>",
		Short: "Execute a read-only SQL query against the history database",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			params, err := parseParamPairs(paramPairs)
			if err != nil {
				return err
			}
			return withDB(cmd, func(ctx context.Context, db store.Store) error {
				rows, err := db.RunSQL(ctx, query, params)
				if err != nil {
					return err
				}
				payload, err := json.MarshalIndent(rows, "", "  ")
				if err != nil {
					return fmt.Errorf("encoding result: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(payload))
				return nil
			})
		},
	}
	cmd.Flags().StringArrayVar(&paramPairs, "param", nil, "Positional query parameter as n=value (repeatable)")
	return cmd
}

func parseParamPairs(pairs []string) (map[string]any, error) {
	params := make(map[string]any)
	for _, pair := range pairs {
		if pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid param %q: expected key=value", pair)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("invalid param %q: empty key", pair)
		}
		params[key] = strings.TrimSpace(value)
	}
	return params, nil
}
