// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package server wires configuration, storage, services and routes into a
// running HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arlott/portfolio-api/internal/config"
	"github.com/arlott/portfolio-api/internal/database"
	"github.com/arlott/portfolio-api/internal/handlers"
	"github.com/arlott/portfolio-api/internal/middleware"
	"github.com/arlott/portfolio-api/internal/repository"
	"github.com/arlott/portfolio-api/internal/services/auth"
	"github.com/arlott/portfolio-api/internal/services/notify"
	"github.com/arlott/portfolio-api/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 10 * time.Second

// Run starts the server with the given CLI command.
func Run(ctx context.Context, cmd *cli.Command) error {
	cfg := config.NewFromCLI(cmd)
	setupLogger(cfg.Log.Level, cfg.Log.Format)

	slog.Info("starting server",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"database", cfg.Database.DSN,
	)
	if cfg.Auth.AllowAdminBackdoor {
		slog.Warn("admin backdoor login is enabled; do not run this in production")
	}

	// Database, migrations included
	db, err := database.Open(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("failed to close database", "error", closeErr)
		}
	}()

	repo := repository.New(db)
	authService := auth.NewService(repo, &cfg.Auth)
	notifier := notify.NewService(&cfg.SMTP)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validation.New()

	setupMiddleware(e, cfg)
	setupRoutes(e, cfg, repo, authService, notifier)

	return startWithGracefulShutdown(ctx, e, cfg)
}

func setupRoutes(e *echo.Echo, cfg *config.Config, repo *repository.Repository, authService *auth.Service, notifier *notify.Service) {
	h := handlers.New(repo, authService, notifier)

	admin := middleware.AdminToken(&cfg.Auth)
	bearer := middleware.Bearer(authService.Codec())

	api := e.Group("/api")
	api.GET("/health", h.Health)
	api.POST("/contacts", h.SubmitContact)
	api.GET("/contacts", h.ListContacts, admin)
	api.POST("/events", h.SubmitEvent)
	api.GET("/events", h.ListEvents, admin)
	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
	api.GET("/me", h.Me, bearer)
}

func startWithGracefulShutdown(ctx context.Context, e *echo.Echo, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	errChan := make(chan error, 1)

	go func() {
		slog.Info("listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
