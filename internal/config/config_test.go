package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[store]
backend = "memgraph"

[memgraph]
uri = "bolt://db:7687"
compress = true

[compiler]
strict = true

[log]
level = "debug"
format = "json"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "memgraph", cfg.Store.Backend)
	assert.Equal(t, "bolt://db:7687", cfg.Memgraph.URI)
	assert.True(t, cfg.Memgraph.Compress)
	assert.True(t, cfg.Compiler.Strict)
	assert.True(t, cfg.Compiler.Provenance, "unset keys keep their defaults")
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "postgres")
	t.Setenv("POSTGRES_DSN", "postgres://u@h/db")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(writeConfig(t, `[store]
backend = "memory"
`))
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Store.Backend)
	assert.Equal(t, "postgres://u@h/db", cfg.Postgres.DSN)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = Load(writeConfig(t, `not = [valid`))
	assert.ErrorContains(t, err, "failed to parse TOML")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"unknown backend", func(c *Config) { c.Store.Backend = "s3" }, false},
		{"label propagation", func(c *Config) { c.Summary.Detector = "label_propagation" }, true},
		{"unknown detector", func(c *Config) { c.Summary.Detector = "louvain" }, false},
		{"file without dir", func(c *Config) { c.Store.Backend = "file"; c.Store.Dir = "" }, false},
		{"memgraph without uri", func(c *Config) { c.Store.Backend = "memgraph" }, false},
		{"postgres without dsn", func(c *Config) { c.Store.Backend = "postgres" }, false},
		{"bad port", func(c *Config) { c.Server.Port = "http" }, false},
		{"bad level", func(c *Config) { c.Log.Level = "trace" }, false},
		{"no store", func(c *Config) { c.Store.Backend = "none" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("STORE_BACKEND", "file")
	t.Setenv("STORE_DIR", "/tmp/nets")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/nets", cfg.Store.Dir)
}
