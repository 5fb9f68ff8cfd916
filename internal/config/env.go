package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// DataDir is the data directory path.
	// Env: DATA_DIR
	// Default: ~/.docforge
	DataDir string `envconfig:"DATA_DIR"`

	// DBURL is the database connection URL.
	// Env: DB_URL
	// Default: sqlite:///{data_dir}/docforge.db
	DBURL string `envconfig:"DB_URL"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// DB configures the connection pool.
	DB PoolEnv `envconfig:"DB"`

	// SeedFile is the fixtures file used by the seed command when no
	// --file flag is given.
	// Env: SEED_FILE
	SeedFile string `envconfig:"SEED_FILE"`
}

// PoolEnv holds environment configuration for the connection pool.
type PoolEnv struct {
	// MaxOpenConns is the maximum number of open connections.
	// Env: DB_MAX_OPEN_CONNS (default: 10)
	MaxOpenConns int `envconfig:"MAX_OPEN_CONNS" default:"10"`

	// MaxIdleConns is the maximum number of idle connections.
	// Env: DB_MAX_IDLE_CONNS (default: 5)
	MaxIdleConns int `envconfig:"MAX_IDLE_CONNS" default:"5"`

	// ConnMaxLifetime is how long a connection may be reused.
	// Env: DB_CONN_MAX_LIFETIME (default: 30m)
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"30m"`
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (EnvConfig, error) {
	return LoadFromEnvWithPrefix("")
}

// LoadFromEnvWithPrefix loads configuration with a custom prefix.
// For example, prefix "DOCFORGE" would require DOCFORGE_DB_URL instead of DB_URL.
func LoadFromEnvWithPrefix(prefix string) (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	cfg := NewAppConfig()

	if e.DataDir != "" {
		cfg = cfg.Apply(WithDataDir(e.DataDir))
	}
	if e.DBURL != "" {
		cfg = cfg.Apply(WithDBURL(e.DBURL))
	}
	if e.LogLevel != "" {
		cfg = cfg.Apply(WithLogLevel(strings.ToUpper(e.LogLevel)))
	}
	if e.LogFormat != "" {
		cfg = cfg.Apply(WithLogFormat(parseLogFormat(e.LogFormat)))
	}
	if e.SeedFile != "" {
		cfg = cfg.Apply(WithSeedFile(e.SeedFile))
	}
	cfg = cfg.Apply(WithPoolConfig(e.DB.ToPoolConfig()))

	return cfg
}

// ToPoolConfig converts PoolEnv to PoolConfig.
func (p PoolEnv) ToPoolConfig() PoolConfig {
	return NewPoolConfig().
		WithMaxOpenConns(p.MaxOpenConns).
		WithMaxIdleConns(p.MaxIdleConns).
		WithConnMaxLifetime(p.ConnMaxLifetime)
}

// parseLogFormat parses a log format string.
func parseLogFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return LogFormatJSON
	default:
		return LogFormatPretty
	}
}
