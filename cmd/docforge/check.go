package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docforge/docforge"
)

func checkCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that all tables, columns and constraints exist",
		Long: `Verify the database schema without changing it.

Prints one line per table, column, foreign key and index. Exits non-zero when
anything is missing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, logger, err := setup(cmd.Context(), flags)
			if err != nil {
				return err
			}

			client, err := openClient(cfg, logger, docforge.WithSkipMigrate())
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			report, err := client.CheckSchema(ctx)
			if err != nil && !errors.Is(err, docforge.ErrSchemaIncomplete) {
				return err
			}
			if _, werr := fmt.Fprint(cmd.OutOrStdout(), report.String()); werr != nil {
				return werr
			}
			return err
		},
	}
}
