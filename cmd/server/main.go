package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/agenthands/gcsynth/internal/config"
	"github.com/agenthands/gcsynth/internal/core"
	"github.com/agenthands/gcsynth/internal/core/community"
	"github.com/agenthands/gcsynth/internal/core/summary"
	"github.com/agenthands/gcsynth/internal/logging"
	"github.com/agenthands/gcsynth/internal/metrics"
	"github.com/agenthands/gcsynth/internal/server"
	"github.com/agenthands/gcsynth/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("Config file %s not found, using defaults and environment", cfgPath)
		cfg, err = config.FromEnv()
	}
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		log.Fatalf("Failed to configure logging: %v", err)
	}

	ctx := context.Background()
	st, closeStore, err := store.Open(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to open network store")
	}
	defer closeStore()

	reg := metrics.NewRegistry()
	compiler := core.NewCompiler(st, reg, logger, core.Options{
		Strict:     cfg.Compiler.Strict,
		Provenance: cfg.Compiler.Provenance,
		Persist:    cfg.Compiler.Persist,
	})

	srv := server.NewServer(compiler, st, reg, logger)
	srv.Summarizer = summary.NewSummarizer(community.ByName(cfg.Summary.Detector))
	r := srv.SetupRouter()

	logger.WithField("port", cfg.Server.Port).Info("starting server")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.WithError(err).Error("server stopped")
	}
}
