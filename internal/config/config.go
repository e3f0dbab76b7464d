package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

type StoreConfig struct {
	// Backend selects where generated networks are kept between runs.
	Backend string `toml:"backend" validate:"oneof=none memory file memgraph postgres"`
	Dir     string `toml:"dir" validate:"required_if=Backend file"`
}

type MemgraphConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Compress bool   `toml:"compress"`
}

type PostgresConfig struct {
	DSN      string `toml:"dsn"`
	Compress bool   `toml:"compress"`
}

type CompilerConfig struct {
	Strict     bool `toml:"strict"`
	Provenance bool `toml:"provenance"`
	Persist    bool `toml:"persist"`
}

type SummaryConfig struct {
	// Detector picks how compile summaries group species into circuits.
	Detector string `toml:"detector" validate:"oneof=components label_propagation"`
}

type ServerConfig struct {
	Port string `toml:"port" validate:"required,numeric"`
}

type LogConfig struct {
	Level  string `toml:"level" validate:"oneof=debug info warn error"`
	Format string `toml:"format" validate:"oneof=text json"`
}

type Config struct {
	Store    StoreConfig    `toml:"store"`
	Memgraph MemgraphConfig `toml:"memgraph"`
	Postgres PostgresConfig `toml:"postgres"`
	Compiler CompilerConfig `toml:"compiler"`
	Summary  SummaryConfig  `toml:"summary"`
	Server   ServerConfig   `toml:"server"`
	Log      LogConfig      `toml:"log"`
}

func Default() *Config {
	return &Config{
		Store:    StoreConfig{Backend: "memory", Dir: "networks"},
		Compiler: CompilerConfig{Provenance: true, Persist: true},
		Summary:  SummaryConfig{Detector: "components"},
		Server:   ServerConfig{Port: "8080"},
		Log:      LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads a TOML file over the defaults, then applies environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv builds a config from the defaults and environment overrides only.
func FromEnv() (*Config, error) {
	cfg := Default()
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) ApplyEnv() {
	override := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	override(&c.Store.Backend, "STORE_BACKEND")
	override(&c.Store.Dir, "STORE_DIR")
	override(&c.Memgraph.URI, "MEMGRAPH_URI")
	override(&c.Memgraph.User, "MEMGRAPH_USER")
	override(&c.Memgraph.Password, "MEMGRAPH_PASSWORD")
	override(&c.Postgres.DSN, "POSTGRES_DSN")
	override(&c.Log.Level, "LOG_LEVEL")
	override(&c.Server.Port, "PORT")
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	switch {
	case c.Store.Backend == "memgraph" && c.Memgraph.URI == "":
		return fmt.Errorf("invalid config: memgraph backend needs memgraph.uri")
	case c.Store.Backend == "postgres" && c.Postgres.DSN == "":
		return fmt.Errorf("invalid config: postgres backend needs postgres.dsn")
	}
	return nil
}
