package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"namecraft/internal/generator"
	"namecraft/internal/store"
	"namecraft/internal/theme"
)

type generateOptions struct {
	theme        string
	count        int
	gender       string
	buildingType string
	seed         int64
	save         bool
	asJSON       bool
}

func generateCmd() *cobra.Command {
	var opts generateOptions
	cmd := &cobra.Command{
		Use:   "generate <kind>",
		Short: "Generate unique names of one kind (NPC, Building, City, District, Street, Faction)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var seed *int64
			if cmd.Flags().Changed("seed") {
				seed = &opts.seed
			}
			return runGenerate(cmd, args[0], seed, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.theme, "theme", "t", theme.Fantasy.String(), "Built-in theme or custom theme id")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 1, "Number of names")
	cmd.Flags().StringVar(&opts.gender, "gender", "", "NPC gender (Male, Female, Neutral)")
	cmd.Flags().StringVar(&opts.buildingType, "type", "", "Building type (Tavern, Inn, Shop, Temple, Guild, Smithy, Library)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Seed (defaults to the configured seed, then a random one)")
	cmd.Flags().BoolVar(&opts.save, "save", false, "Record the names in the history database")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print JSON instead of one name per line")
	return cmd
}

type generateResult struct {
	Seed  int64    `json:"seed"`
	Theme string   `json:"theme"`
	Kind  string   `json:"kind"`
	Names []string `json:"names"`
	RunID string   `json:"run_id,omitempty"`
}

func runGenerate(cmd *cobra.Command, kindArg string, seed *int64, opts generateOptions) error {
	ctx := context.Background()

	req, err := buildRequest(kindArg, opts)
	if err != nil {
		return err
	}
	if opts.count < 1 {
		return fmt.Errorf("--count must be at least 1")
	}

	cfg, err := loadProject(configExplicit(cmd))
	if err != nil {
		return err
	}
	gen, err := newGenerator(ctx, cfg, seed)
	if err != nil {
		return err
	}

	result := generateResult{Seed: gen.Seed(), Theme: req.Theme.String(), Kind: req.Kind.String()}
	for range opts.count {
		name, err := gen.Generate(req)
		if err != nil {
			return err
		}
		result.Names = append(result.Names, name)
	}
	logger.Info("names generated",
		slog.String("kind", result.Kind),
		slog.String("theme", result.Theme),
		slog.Int("count", len(result.Names)),
		slog.Int64("seed", result.Seed),
	)

	if opts.save {
		db, err := openDB(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close(ctx)

		run := store.NewRun(result.Seed, time.Now())
		for _, name := range result.Names {
			run.Add(result.Theme, result.Kind, name)
		}
		if err := db.SaveNames(ctx, run.Records()); err != nil {
			return err
		}
		result.RunID = run.ID
	}

	out := cmd.OutOrStdout()
	if opts.asJSON {
		payload, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		fmt.Fprintln(out, string(payload))
		return nil
	}
	for _, name := range result.Names {
		fmt.Fprintln(out, name)
	}
	return nil
}

func buildRequest(kindArg string, opts generateOptions) (generator.Request, error) {
	kind, err := theme.ParseEntityKind(kindArg)
	if err != nil {
		return generator.Request{}, err
	}
	if strings.TrimSpace(opts.theme) == "" {
		return generator.Request{}, fmt.Errorf("--theme must not be empty")
	}
	req := generator.Request{Kind: kind, Theme: theme.ParseRef(opts.theme)}

	if opts.gender != "" {
		if kind != theme.KindNPC {
			return generator.Request{}, fmt.Errorf("--gender only applies to %s", theme.KindNPC)
		}
		gender, err := theme.ParseGender(opts.gender)
		if err != nil {
			return generator.Request{}, err
		}
		req.Gender = &gender
	}
	if opts.buildingType != "" {
		if kind != theme.KindBuilding {
			return generator.Request{}, fmt.Errorf("--type only applies to %s", theme.KindBuilding)
		}
		bt, err := theme.ParseBuildingType(opts.buildingType)
		if err != nil {
			return generator.Request{}, err
		}
		req.BuildingType = &bt
	}
	return req, nil
}

func configExplicit(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("config")
}
