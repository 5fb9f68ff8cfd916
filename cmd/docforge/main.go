// Package main is the entry point for the docforge CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/docforge/docforge/internal/config"
	"github.com/docforge/docforge/internal/log"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globalFlags are accepted by every command.
type globalFlags struct {
	envFile string
	dbURL   string
}

func rootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "docforge",
		Short: "Docforge document store administration",
		Long: `Docforge stores legal documents, extracted variables, document types,
markdown templates and chat history in SQLite or PostgreSQL.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  DATA_DIR                Data directory (default: ~/.docforge)
  DB_URL                  Database URL (default: sqlite:///{data_dir}/docforge.db)
  DB_MAX_OPEN_CONNS       Maximum open connections (default: 10)
  DB_MAX_IDLE_CONNS       Maximum idle connections (default: 5)
  DB_CONN_MAX_LIFETIME    Connection lifetime (default: 30m)
  LOG_LEVEL               Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT              Log format: pretty, json (default: pretty)
  SEED_FILE               Fixture file used by "seed" when --file is omitted`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.PersistentFlags().StringVar(&flags.dbURL, "db-url", "", "Database URL, overrides DB_URL")

	cmd.AddCommand(migrateCmd(flags))
	cmd.AddCommand(checkCmd(flags))
	cmd.AddCommand(seedCmd(flags))
	cmd.AddCommand(versionCmd())

	return cmd
}

// setup loads configuration, applies flag overrides and installs the logger.
// The returned context carries a run id for log correlation.
func setup(ctx context.Context, flags *globalFlags) (context.Context, config.AppConfig, *log.Logger, error) {
	cfg, err := config.LoadConfig(flags.envFile)
	if err != nil {
		return ctx, config.AppConfig{}, nil, fmt.Errorf("load config: %w", err)
	}
	if flags.dbURL != "" {
		cfg = cfg.Apply(config.WithDBURL(flags.dbURL))
	}

	logger := log.Configure(cfg)
	ctx = log.WithRunID(ctx, uuid.NewString())
	logger.DebugContext(ctx, "configuration loaded", attrsToArgs(cfg)...)
	return ctx, cfg, logger, nil
}
