// Package config provides application configuration.
package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Default configuration values.
const (
	DefaultLogLevel        = "INFO"
	DefaultDBFile          = "docforge.db"
	DefaultMaxOpenConns    = 10
	DefaultMaxIdleConns    = 5
	DefaultConnMaxLifetime = 30 * time.Minute
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// PoolConfig configures the database connection pool.
type PoolConfig struct {
	maxOpenConns    int
	maxIdleConns    int
	connMaxLifetime time.Duration
}

// NewPoolConfig creates a PoolConfig with defaults.
func NewPoolConfig() PoolConfig {
	return PoolConfig{
		maxOpenConns:    DefaultMaxOpenConns,
		maxIdleConns:    DefaultMaxIdleConns,
		connMaxLifetime: DefaultConnMaxLifetime,
	}
}

// MaxOpenConns returns the maximum number of open connections.
func (p PoolConfig) MaxOpenConns() int { return p.maxOpenConns }

// MaxIdleConns returns the maximum number of idle connections.
func (p PoolConfig) MaxIdleConns() int { return p.maxIdleConns }

// ConnMaxLifetime returns how long a connection may be reused.
func (p PoolConfig) ConnMaxLifetime() time.Duration { return p.connMaxLifetime }

// WithMaxOpenConns returns a new config with the given limit. Non-positive
// values are ignored.
func (p PoolConfig) WithMaxOpenConns(n int) PoolConfig {
	if n > 0 {
		p.maxOpenConns = n
	}
	return p
}

// WithMaxIdleConns returns a new config with the given limit. Negative
// values are ignored.
func (p PoolConfig) WithMaxIdleConns(n int) PoolConfig {
	if n >= 0 {
		p.maxIdleConns = n
	}
	return p
}

// WithConnMaxLifetime returns a new config with the given lifetime.
// Zero means connections are reused forever.
func (p PoolConfig) WithConnMaxLifetime(d time.Duration) PoolConfig {
	if d >= 0 {
		p.connMaxLifetime = d
	}
	return p
}

// AppConfig holds the main application configuration.
type AppConfig struct {
	dataDir   string
	dbURL     string
	logLevel  string
	logFormat LogFormat
	pool      PoolConfig
	seedFile  string
}

// DefaultDataDir returns the default data directory.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".docforge"
	}
	return filepath.Join(home, ".docforge")
}

// DefaultDBURL returns the SQLite database URL inside dataDir.
func DefaultDBURL(dataDir string) string {
	return "sqlite:///" + filepath.Join(dataDir, DefaultDBFile)
}

// DefaultLogger returns the default slog logger for library consumers.
func DefaultLogger() *slog.Logger {
	return slog.Default()
}

// PrepareDataDir creates the data directory if it does not exist and returns it.
func PrepareDataDir(dataDir string) (string, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	return dataDir, nil
}

// NewAppConfig creates a new AppConfig with defaults.
func NewAppConfig() AppConfig {
	dataDir := DefaultDataDir()
	return AppConfig{
		dataDir:   dataDir,
		dbURL:     DefaultDBURL(dataDir),
		logLevel:  DefaultLogLevel,
		logFormat: LogFormatPretty,
		pool:      NewPoolConfig(),
	}
}

// DataDir returns the data directory.
func (c AppConfig) DataDir() string { return c.dataDir }

// DBURL returns the database connection URL.
func (c AppConfig) DBURL() string { return c.dbURL }

// UsesDefaultDB reports whether the database lives in the data directory.
func (c AppConfig) UsesDefaultDB() bool { return c.dbURL == DefaultDBURL(c.dataDir) }

// LogLevel returns the log level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log output format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// Pool returns the connection pool configuration.
func (c AppConfig) Pool() PoolConfig { return c.pool }

// SeedFile returns the default fixtures file for the seed command.
func (c AppConfig) SeedFile() string { return c.seedFile }

// AppConfigOption is a functional option for AppConfig.
type AppConfigOption func(*AppConfig)

// WithDataDir sets the data directory. A database URL still pointing at the
// previous data directory follows it.
func WithDataDir(dir string) AppConfigOption {
	return func(c *AppConfig) {
		if c.dbURL == "" || c.dbURL == DefaultDBURL(c.dataDir) {
			c.dbURL = DefaultDBURL(dir)
		}
		c.dataDir = dir
	}
}

// WithDBURL sets the database URL.
func WithDBURL(url string) AppConfigOption {
	return func(c *AppConfig) { c.dbURL = url }
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithPoolConfig sets the connection pool configuration.
func WithPoolConfig(p PoolConfig) AppConfigOption {
	return func(c *AppConfig) { c.pool = p }
}

// WithSeedFile sets the default fixtures file.
func WithSeedFile(path string) AppConfigOption {
	return func(c *AppConfig) { c.seedFile = path }
}

// NewAppConfigWithOptions creates an AppConfig with functional options.
func NewAppConfigWithOptions(opts ...AppConfigOption) AppConfig {
	return NewAppConfig().Apply(opts...)
}

// Apply returns a new AppConfig with the given options applied.
func (c AppConfig) Apply(opts ...AppConfigOption) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// LogAttrs returns slog attributes for logging the configuration.
// Database credentials are masked.
func (c AppConfig) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("data_dir", c.dataDir),
		slog.String("db_url", c.MaskedDBURL()),
		slog.String("log_level", c.logLevel),
		slog.String("log_format", string(c.logFormat)),
		slog.Int("db_max_open_conns", c.pool.MaxOpenConns()),
		slog.Int("db_max_idle_conns", c.pool.MaxIdleConns()),
		slog.Duration("db_conn_max_lifetime", c.pool.ConnMaxLifetime()),
	}
}

// MaskedDBURL returns the database URL with any password replaced.
func (c AppConfig) MaskedDBURL() string {
	if c.dbURL == "" {
		return "(default)"
	}
	if strings.HasPrefix(c.dbURL, "sqlite:") {
		return c.dbURL
	}
	u, err := url.Parse(c.dbURL)
	if err != nil {
		return "postgres://***@***"
	}
	return u.Redacted()
}
