package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/docforge/docforge/internal/seed"
)

func seedCmd(flags *globalFlags) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load document types and templates from a YAML file",
		Long: `Load document types and templates with their variables from a YAML file.

Document types are matched by name and templates by tenant and title; entries
already in the database are skipped, so seeding twice is harmless.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, logger, err := setup(cmd.Context(), flags)
			if err != nil {
				return err
			}
			if file == "" {
				file = cfg.SeedFile()
			}
			if file == "" {
				return errors.New("no fixture file: pass --file or set SEED_FILE")
			}

			fixtures, err := seed.ParseFile(file)
			if err != nil {
				return err
			}

			client, err := openClient(cfg, logger)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			loader := seed.NewLoader(client.DocumentTypes, client.Templates, logger.With(slog.String("file", file)))
			_, err = loader.Load(ctx, fixtures)
			return err
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Fixture file (default: SEED_FILE)")
	return cmd
}
