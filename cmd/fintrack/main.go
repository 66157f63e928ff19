package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fintrack/internal/api"
	"fintrack/internal/api/handlers"
	"fintrack/internal/repository"
	"fintrack/internal/service"
	"fintrack/pkg/config"
	"fintrack/pkg/logger"
	"fintrack/pkg/postgres"

	"go.uber.org/zap"
)

// @title Fintrack API
// @version 1.0
// @description Personal finance tracker: transactions, monthly summaries, credit card rollups, and account balances.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting fintrack service")

	// Initialize database
	ctx := context.Background()
	if err := postgres.RunMigrations(&cfg.Database); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	txRepo := repository.NewTransactionRepository(db, appLogger)
	acctRepo := repository.NewAccountRepository(db, appLogger)

	// Initialize services
	txService := service.NewTransactionService(txRepo, cfg.Goals, appLogger)
	acctService := service.NewAccountService(acctRepo, appLogger)
	cardService := service.NewCreditCardService(txRepo, cfg.Cards.Names, appLogger)

	// Initialize handlers
	txHandler := handlers.NewTransactionHandler(txService, appLogger)
	acctHandler := handlers.NewAccountHandler(acctService, appLogger)
	cardHandler := handlers.NewCreditCardHandler(cardService, appLogger)

	// Setup router
	app := api.SetupRouter(txHandler, acctHandler, cardHandler, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
