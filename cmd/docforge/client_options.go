package main

import (
	"fmt"

	"github.com/docforge/docforge"
	"github.com/docforge/docforge/internal/config"
	"github.com/docforge/docforge/internal/log"
)

// clientOptions returns the docforge.Option slice derived from AppConfig.
// Callers append command-specific options before passing it to docforge.New.
func clientOptions(cfg config.AppConfig, logger *log.Logger) ([]docforge.Option, error) {
	if cfg.UsesDefaultDB() {
		if _, err := config.PrepareDataDir(cfg.DataDir()); err != nil {
			return nil, err
		}
	}

	pool := cfg.Pool()
	return []docforge.Option{
		docforge.WithDatabaseURL(cfg.DBURL()),
		docforge.WithPool(pool.MaxOpenConns(), pool.MaxIdleConns(), pool.ConnMaxLifetime()),
		docforge.WithLogger(logger.Slog()),
	}, nil
}

// openClient opens the configured database.
func openClient(cfg config.AppConfig, logger *log.Logger, extra ...docforge.Option) (*docforge.Client, error) {
	opts, err := clientOptions(cfg, logger)
	if err != nil {
		return nil, err
	}
	client, err := docforge.New(append(opts, extra...)...)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.MaskedDBURL(), err)
	}
	return client, nil
}

func attrsToArgs(cfg config.AppConfig) []any {
	attrs := cfg.LogAttrs()
	args := make([]any, 0, len(attrs))
	for _, a := range attrs {
		args = append(args, a)
	}
	return args
}
