// Package main is the entry point for the Rewards Hub API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/rewards-hub/backend/config"
	"github.com/rewards-hub/backend/internal/application/usecase/user"
	"github.com/rewards-hub/backend/internal/infra/db"
	"github.com/rewards-hub/backend/internal/infra/server/router"
	"github.com/rewards-hub/backend/internal/integration/adapters"
	"github.com/rewards-hub/backend/internal/integration/entrypoint/controller"
	"github.com/rewards-hub/backend/internal/integration/persistence"
	"github.com/rewards-hub/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Rewards Hub API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	var dbHealthChecker func() bool

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		dbHealthChecker = func() bool { return false }
	} else {
		// Run database migrations
		if err := database.AutoMigrate(
			&model.UserModel{},
			&model.RewardModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		dbHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Create health controller with database health checker
	healthController := controller.NewHealthController(dbHealthChecker)

	// Create user controller (only if database is available)
	var userController *controller.UserController

	if database != nil {
		userRepo := persistence.NewUserRepository(database.DB())
		passwordService := adapters.NewPasswordService()

		createUserUseCase := user.NewCreateUserUseCase(userRepo, passwordService)
		authenticateUseCase := user.NewAuthenticateUserUseCase(userRepo, passwordService)
		changePasswordUseCase := user.NewChangePasswordUseCase(userRepo, passwordService)

		userController = controller.NewUserController(
			createUserUseCase,
			authenticateUseCase,
			changePasswordUseCase,
		)

		slog.Info("User account system initialized successfully")
	} else {
		slog.Warn("User account system not initialized due to missing database connection")
	}

	// Setup router
	r := router.NewRouter(healthController, userController)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
