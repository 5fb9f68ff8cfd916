package docforge

import (
	"log/slog"
	"time"

	"github.com/docforge/docforge/internal/config"
)

// databaseType identifies the database.
type databaseType int

const (
	databaseUnset databaseType = iota
	databaseSQLite
	databasePostgres
	databaseURL
)

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	database    databaseType
	dbPath      string
	dbDSN       string
	dbURL       string
	logger      *slog.Logger
	pool        config.PoolConfig
	skipMigrate bool
}

// newClientConfig creates a clientConfig with defaults from internal/config.
func newClientConfig() *clientConfig {
	return &clientConfig{
		pool: config.NewPoolConfig(),
	}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithSQLite stores data in the SQLite file at path. The parent directory is
// created if needed. ":memory:" opens a private in-memory database.
func WithSQLite(path string) Option {
	return func(c *clientConfig) {
		c.database = databaseSQLite
		c.dbPath = path
	}
}

// WithPostgres stores data in PostgreSQL. dsn is a postgres:// or
// postgresql:// URL.
func WithPostgres(dsn string) Option {
	return func(c *clientConfig) {
		c.database = databasePostgres
		c.dbDSN = dsn
	}
}

// WithDatabaseURL selects the database from a URL as used by DB_URL:
// sqlite:///path or postgres://...
func WithDatabaseURL(url string) Option {
	return func(c *clientConfig) {
		c.database = databaseURL
		c.dbURL = url
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = l
	}
}

// WithPool sizes the connection pool. SQLite always uses one connection.
func WithPool(maxOpen, maxIdle int, maxLifetime time.Duration) Option {
	return func(c *clientConfig) {
		c.pool = config.NewPoolConfig().
			WithMaxOpenConns(maxOpen).
			WithMaxIdleConns(maxIdle).
			WithConnMaxLifetime(maxLifetime)
	}
}

// WithSkipMigrate opens the database without applying the schema.
func WithSkipMigrate() Option {
	return func(c *clientConfig) {
		c.skipMigrate = true
	}
}
