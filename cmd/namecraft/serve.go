package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"namecraft/internal/mcp"
	"namecraft/internal/store"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func serveCmd() *cobra.Command {
	var seed int64
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var seedOverride *int64
			if cmd.Flags().Changed("seed") {
				seedOverride = &seed
			}
			return runServe(cmd, seedOverride)
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "Session seed (defaults to the configured seed, then a random one)")
	return cmd
}

func runServe(cmd *cobra.Command, seed *int64) error {
	ctx := context.Background()

	cfg, err := loadProject(configExplicit(cmd))
	if err != nil {
		return err
	}

	gen, err := newGenerator(ctx, cfg, seed)
	if err != nil {
		return err
	}

	var history store.Store
	if strings.TrimSpace(cfg.Database.DSN) != "" {
		db, err := openDB(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close(ctx)
		history = db
	}

	logger.Info("mcp server starting", slog.Int64("seed", gen.Seed()), slog.Bool("history", history != nil))
	server := mcp.NewServer(gen, history, version)
	return server.Run(ctx, &sdk.StdioTransport{})
}
