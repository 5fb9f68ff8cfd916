package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConstants(t *testing.T) {
	if DefaultLogLevel != "INFO" {
		t.Errorf("DefaultLogLevel = %v, want 'INFO'", DefaultLogLevel)
	}
	if DefaultDBFile != "docforge.db" {
		t.Errorf("DefaultDBFile = %v, want 'docforge.db'", DefaultDBFile)
	}
	if DefaultMaxOpenConns != 10 {
		t.Errorf("DefaultMaxOpenConns = %v, want 10", DefaultMaxOpenConns)
	}
	if DefaultMaxIdleConns != 5 {
		t.Errorf("DefaultMaxIdleConns = %v, want 5", DefaultMaxIdleConns)
	}
	if DefaultConnMaxLifetime != 30*time.Minute {
		t.Errorf("DefaultConnMaxLifetime = %v, want 30m", DefaultConnMaxLifetime)
	}
}

func TestPoolConfig(t *testing.T) {
	p := NewPoolConfig()
	if p.MaxOpenConns() != DefaultMaxOpenConns {
		t.Errorf("MaxOpenConns() = %v, want %v", p.MaxOpenConns(), DefaultMaxOpenConns)
	}

	p = p.WithMaxOpenConns(0).WithMaxIdleConns(-1).WithConnMaxLifetime(-time.Second)
	if p.MaxOpenConns() != DefaultMaxOpenConns {
		t.Errorf("MaxOpenConns() after invalid = %v, want %v", p.MaxOpenConns(), DefaultMaxOpenConns)
	}
	if p.MaxIdleConns() != DefaultMaxIdleConns {
		t.Errorf("MaxIdleConns() after invalid = %v, want %v", p.MaxIdleConns(), DefaultMaxIdleConns)
	}
	if p.ConnMaxLifetime() != DefaultConnMaxLifetime {
		t.Errorf("ConnMaxLifetime() after invalid = %v, want %v", p.ConnMaxLifetime(), DefaultConnMaxLifetime)
	}

	p = p.WithMaxOpenConns(2).WithMaxIdleConns(0).WithConnMaxLifetime(0)
	if p.MaxOpenConns() != 2 || p.MaxIdleConns() != 0 || p.ConnMaxLifetime() != 0 {
		t.Errorf("pool = %+v, want 2/0/0", p)
	}
}

func TestAppConfig_Defaults(t *testing.T) {
	cfg := NewAppConfig()

	if cfg.DataDir() != DefaultDataDir() {
		t.Errorf("DataDir() = %v, want %v", cfg.DataDir(), DefaultDataDir())
	}
	if !strings.HasSuffix(cfg.DBURL(), "docforge.db") {
		t.Errorf("DBURL() = %v, want suffix docforge.db", cfg.DBURL())
	}
	if !cfg.UsesDefaultDB() {
		t.Error("UsesDefaultDB() = false, want true")
	}
	if cfg.LogLevel() != DefaultLogLevel {
		t.Errorf("LogLevel() = %v, want %v", cfg.LogLevel(), DefaultLogLevel)
	}
	if cfg.LogFormat() != LogFormatPretty {
		t.Errorf("LogFormat() = %v, want %v", cfg.LogFormat(), LogFormatPretty)
	}
	if cfg.SeedFile() != "" {
		t.Errorf("SeedFile() = %v, want empty", cfg.SeedFile())
	}
}

func TestAppConfig_WithOptions(t *testing.T) {
	cfg := NewAppConfigWithOptions(
		WithDBURL("postgres://localhost/docforge"),
		WithLogLevel("DEBUG"),
		WithLogFormat(LogFormatJSON),
		WithSeedFile("fixtures.yaml"),
		WithPoolConfig(NewPoolConfig().WithMaxOpenConns(3)),
	)

	if cfg.DBURL() != "postgres://localhost/docforge" {
		t.Errorf("DBURL() = %v", cfg.DBURL())
	}
	if cfg.LogLevel() != "DEBUG" {
		t.Errorf("LogLevel() = %v", cfg.LogLevel())
	}
	if cfg.LogFormat() != LogFormatJSON {
		t.Errorf("LogFormat() = %v", cfg.LogFormat())
	}
	if cfg.SeedFile() != "fixtures.yaml" {
		t.Errorf("SeedFile() = %v", cfg.SeedFile())
	}
	if cfg.Pool().MaxOpenConns() != 3 {
		t.Errorf("Pool().MaxOpenConns() = %v", cfg.Pool().MaxOpenConns())
	}
}

func TestAppConfig_DataDirUpdatesDBURL(t *testing.T) {
	cfg := NewAppConfig().Apply(WithDataDir("/srv/docforge"))
	want := "sqlite:///" + filepath.Join("/srv/docforge", "docforge.db")
	if cfg.DBURL() != want {
		t.Errorf("DBURL() = %v, want %v", cfg.DBURL(), want)
	}

	custom := NewAppConfig().Apply(WithDBURL("sqlite:///elsewhere.db"), WithDataDir("/srv/docforge"))
	if custom.DBURL() != "sqlite:///elsewhere.db" {
		t.Errorf("explicit DBURL() = %v, want sqlite:///elsewhere.db", custom.DBURL())
	}
}

func TestAppConfig_MaskedDBURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"sqlite:///data/docforge.db", "sqlite:///data/docforge.db"},
		{"postgres://docforge:secret@db:5432/docforge", "postgres://docforge:xxxxx@db:5432/docforge"},
		{"postgres://db:5432/docforge", "postgres://db:5432/docforge"},
	}

	for _, tt := range tests {
		cfg := NewAppConfig().Apply(WithDBURL(tt.url))
		if got := cfg.MaskedDBURL(); got != tt.want {
			t.Errorf("MaskedDBURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
		if strings.Contains(cfg.MaskedDBURL(), "secret") {
			t.Errorf("MaskedDBURL(%q) leaks the password", tt.url)
		}
	}
}

func TestAppConfig_LogAttrs(t *testing.T) {
	cfg := NewAppConfig().Apply(WithDBURL("postgres://u:secret@h/db"))
	for _, a := range cfg.LogAttrs() {
		if strings.Contains(a.Value.String(), "secret") {
			t.Errorf("LogAttrs() attribute %s leaks the password", a.Key)
		}
	}
}

func TestPrepareDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	got, err := PrepareDataDir(dir)
	if err != nil {
		t.Fatalf("PrepareDataDir() error = %v", err)
	}
	if got != dir {
		t.Errorf("PrepareDataDir() = %v, want %v", got, dir)
	}
}
