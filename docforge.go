// Package docforge provides the storage layer for a legal document
// workspace: uploaded documents and the values extracted from them, a
// catalogue of document types, markdown templates with fillable variables,
// drafts produced from templates, and a per-tenant chat log.
//
// Basic usage:
//
//	client, err := docforge.New(docforge.WithSQLite("data/docforge.db"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	nda, err := client.DocumentTypes.Save(ctx, document.NewType("NDA"))
//	doc, err := client.Documents.Save(ctx,
//	    document.NewDocument("org-1", "uploads/nda.pdf").WithType(nda))
//
//	vars, err := client.DocumentVariables.SaveAll(ctx, []document.Variable{
//	    document.NewVariable(doc.ID(), "party_a", "Acme Ltd"),
//	})
package docforge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/docforge/docforge/domain/chat"
	"github.com/docforge/docforge/domain/document"
	"github.com/docforge/docforge/domain/template"
	"github.com/docforge/docforge/infrastructure/persistence"
	"github.com/docforge/docforge/internal/config"
	"github.com/docforge/docforge/internal/database"
)

// Client is the main entry point for the docforge library.
//
// Access stores via struct fields:
//
//	client.Documents.ListByOrg(ctx, "org-1")
//	client.Templates.SaveWithVariables(ctx, tpl, vars)
//	client.ChatMessages.History(ctx, "org-1")
type Client struct {
	DocumentTypes     document.TypeStore
	Documents         document.DocumentStore
	DocumentVariables document.VariableStore
	Templates         template.TemplateStore
	TemplateVariables template.VariableStore
	Instances         template.InstanceStore
	ChatMessages      chat.MessageStore

	db        database.Database
	logger    *slog.Logger
	closeOnce sync.Once
	closeErr  error
}

// New creates a new Client with the given options. Unless WithSkipMigrate is
// given, the schema is applied before New returns.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.database == databaseUnset {
		return nil, ErrNoDatabase
	}

	logger := cfg.logger
	if logger == nil {
		logger = config.DefaultLogger()
	}

	dbURL, err := buildDatabaseURL(cfg)
	if err != nil {
		return nil, fmt.Errorf("build database url: %w", err)
	}
	if err := prepareSQLiteDir(cfg); err != nil {
		return nil, err
	}

	ctx := context.Background()
	db, err := database.NewDatabase(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pool := cfg.pool
	if err := db.ConfigurePool(pool.MaxOpenConns(), pool.MaxIdleConns(), pool.ConnMaxLifetime()); err != nil {
		return nil, errors.Join(fmt.Errorf("configure pool: %w", err), db.Close())
	}

	if !cfg.skipMigrate {
		if err := persistence.AutoMigrate(db); err != nil {
			return nil, errors.Join(fmt.Errorf("auto migrate: %w", err), db.Close())
		}
	}

	logger.Debug("database ready",
		slog.String("dialect", db.GORM().Dialector.Name()),
		slog.Bool("migrated", !cfg.skipMigrate),
	)

	return &Client{
		DocumentTypes:     persistence.NewDocumentTypeStore(db),
		Documents:         persistence.NewDocumentStore(db),
		DocumentVariables: persistence.NewDocumentVariableStore(db),
		Templates:         persistence.NewTemplateStore(db),
		TemplateVariables: persistence.NewTemplateVariableStore(db),
		Instances:         persistence.NewInstanceStore(db),
		ChatMessages:      persistence.NewChatMessageStore(db),
		db:                db,
		logger:            logger,
	}, nil
}

// Migrate applies the schema. It is safe to call on an up-to-date database.
func (c *Client) Migrate() error {
	if err := persistence.AutoMigrate(c.db); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	c.logger.Debug("schema migrated", slog.String("dialect", c.Dialect()))
	return nil
}

// CheckSchema reports which tables, columns, foreign keys and indexes exist.
// The returned error wraps ErrSchemaIncomplete when anything is missing.
func (c *Client) CheckSchema(ctx context.Context) (persistence.SchemaReport, error) {
	report, err := persistence.CheckSchema(ctx, c.db)
	if err != nil {
		return persistence.SchemaReport{}, fmt.Errorf("check schema: %w", err)
	}
	if !report.OK() {
		return report, fmt.Errorf("%w: %d objects missing", ErrSchemaIncomplete, len(report.Missing()))
	}
	return report, nil
}

// Dialect returns the name of the database dialect, "sqlite" or "postgres".
func (c *Client) Dialect() string {
	return c.db.GORM().Dialector.Name()
}

// Close releases the database. Calling it again returns the first result.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		if err := c.db.Close(); err != nil {
			c.closeErr = fmt.Errorf("close database: %w", err)
		}
	})
	return c.closeErr
}

// buildDatabaseURL constructs the database URL from configuration.
func buildDatabaseURL(cfg *clientConfig) (string, error) {
	switch cfg.database {
	case databaseSQLite:
		return "sqlite:///" + cfg.dbPath, nil
	case databasePostgres:
		return cfg.dbDSN, nil
	case databaseURL:
		return cfg.dbURL, nil
	default:
		return "", ErrNoDatabase
	}
}

// prepareSQLiteDir creates the directory holding a SQLite file.
func prepareSQLiteDir(cfg *clientConfig) error {
	if cfg.database != databaseSQLite || cfg.dbPath == "" || cfg.dbPath == ":memory:" {
		return nil
	}
	dir := filepath.Dir(cfg.dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create database directory: %w", err)
	}
	return nil
}
