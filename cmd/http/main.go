package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/esssios/evm-tokenList/config"
	httpserver "github.com/esssios/evm-tokenList/internal/adapters/http/server"
	loggeradapter "github.com/esssios/evm-tokenList/internal/adapters/logger"
	listfiles "github.com/esssios/evm-tokenList/internal/adapters/tokenlist"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: .env file not found: %v\n", err)
	}

	cfg := config.Load()

	isDevelopment := cfg.App.Environment == "development"
	logger, err := loggeradapter.New(cfg.App.LogLevel, isDevelopment)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.Database.Path == "" {
		logger.Fatal("TOKENLIST_DB is required: the server serves lists recorded by the generator")
	}

	store, err := listfiles.NewStore(cfg.Database.Path)
	if err != nil {
		logger.Fatal("Failed to open tokenlist store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close tokenlist store", zap.Error(err))
		}
	}()

	handler := httpserver.NewHandlerAdapter(store, logger)

	serverConfig := httpserver.Config{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	server := httpserver.NewServer(serverConfig, handler, logger)

	logger.Info("Server configured",
		zap.String("host", cfg.Server.Host),
		zap.String("port", cfg.Server.Port),
		zap.String("database", cfg.Database.Path),
	)

	if err := server.StartWithGracefulShutdown(); err != nil {
		logger.Fatal("Server failed", zap.Error(err))
	}

	logger.Info("Application stopped gracefully")
}
