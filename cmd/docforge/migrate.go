package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"
)

func migrateCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, logger, err := setup(cmd.Context(), flags)
			if err != nil {
				return err
			}

			start := time.Now()
			client, err := openClient(cfg, logger)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			logger.InfoContext(ctx, "schema migrated",
				slog.String("dialect", client.Dialect()),
				slog.String("db_url", cfg.MaskedDBURL()),
				slog.Duration("took", time.Since(start)),
			)
			return nil
		},
	}
}
