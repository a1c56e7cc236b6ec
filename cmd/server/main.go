package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mrpanam/marketboard/internal/adapter/httpapi"
	"github.com/mrpanam/marketboard/internal/adapter/repository/postgres"
	"github.com/mrpanam/marketboard/internal/config"
	"github.com/mrpanam/marketboard/internal/usecase/overview"
)

const configPath = "config"

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// 1. Load static configuration (rate table, top-K, DB settings)
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	// Add 2-second delay to ensure Postgres is up (Simple retry)
	time.Sleep(2 * time.Second)

	// 2. Setup Database
	db, err := postgres.NewDB(cfg.ConnString())
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// 3. Initialize Repositories (Postgres)
	assetRepo := postgres.NewAssetRepository(db)
	walletRepo := postgres.NewWalletRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)

	// 4. Initialize Services (Use Cases)
	overviewService := overview.NewOverviewService(assetRepo, walletRepo, categoryRepo, cfg)

	// 5. Start HTTP Server
	srv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: httpapi.NewServer(logger, overviewService),
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", cfg.HTTP.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to serve HTTP", zap.Error(err))
		}
	}()

	// Graceful shutdown
	waitForShutdown(srv, logger)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(srv *http.Server, logger *zap.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	logger.Info("received signal, shutting down gracefully", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("failed to shut down HTTP server", zap.Error(err))
	}
	logger.Info("HTTP server stopped")
}
