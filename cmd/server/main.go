package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/decikit/decikit/internal/config"
	"github.com/decikit/decikit/internal/logging"
	"github.com/decikit/decikit/internal/server"
)

func main() {
	cfg := config.LoadOrDefault()

	// Flags override the environment for development convenience
	port := flag.String("port", cfg.Server.Port, "Server port")
	host := flag.String("host", cfg.Server.Host, "Bind address")
	precision := flag.Uint("precision", uint(cfg.Decimal.Precision), "Decimal precision in digits")
	flag.Parse()
	cfg.Server.Port = *port
	cfg.Server.Host = *host
	cfg.Decimal.Precision = uint32(*precision)

	logger, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to create server", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx, cfg.Server.Host+":"+cfg.Server.Port); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
