package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/agenthands/skillgraph/internal/config"
	"github.com/agenthands/skillgraph/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Warn("could not load config file, using defaults", zap.String("path", cfgPath), zap.Error(err))
		cfg = config.Default()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Server.Port
	}

	srv, err := server.NewServer(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize server", zap.Error(err))
	}
	r := srv.SetupRouter()

	logger.Info("starting server",
		zap.String("port", port),
		zap.Int("taxonomy_skills", srv.Engine.Taxonomy.Len()),
	)
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
