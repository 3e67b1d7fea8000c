// Package main initializes and starts the Oshaad back-office HTTP server,
// setting up configuration, logging, database connections, repositories,
// services, handlers, and the image cleaner.
package main

import (
	"cmp"
	"context"
	"fmt"
	"time"

	nethttp "net/http"

	"github.com/oshaad/backoffice/internal/config"
	"github.com/oshaad/backoffice/internal/db"
	"github.com/oshaad/backoffice/internal/logger"
	"github.com/oshaad/backoffice/internal/repository"
	"github.com/oshaad/backoffice/internal/server/handler/http"
	"github.com/oshaad/backoffice/internal/service"
	"go.uber.org/zap"
)

// tokenTTL is how long an issued admin bearer token stays valid.
const tokenTTL = 12 * time.Hour

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()
	addr := options.Port
	dbName := options.DatabaseDSN

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	if options.JWTSecret == "" {
		zapLogger.Fatal("missing token signing secret (-s flag or JWT_SECRET)")
	}

	// Initialize PostgreSQL connection.
	postgresDB, err := db.InitPostgres(dbName)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Sweep image files orphaned by deletes and replacements.
	db.StartOrphanImageCleaner(context.Background(), postgresDB,
		options.UploadsDir,
		time.Hour,    // interval
		24*time.Hour, // leave recent files alone
		zapLogger,
	)

	// Initialize repositories for admins and the menu catalog.
	adminRepo := repository.NewPostgresAdminRepository(postgresDB)
	menuRepo := repository.NewPostgresMenuRepository(postgresDB)

	// Initialize business-logic services.
	authService := service.NewAuthService(adminRepo, options.JWTSecret, tokenTTL)
	menuService := service.NewMenuService(menuRepo, service.DiskImageStore{Dir: options.UploadsDir})

	// Seed the back-office login when credentials are configured.
	if options.AdminEmail != "" && options.AdminPassword != "" {
		if err := authService.EnsureAdmin(context.Background(), options.AdminEmail, options.AdminPassword); err != nil {
			zapLogger.Fatal("cannot seed admin account", zap.Error(err))
		}
	}

	// Create HTTP handlers for auth and menu endpoints.
	authHandler := &http.AuthHandler{AuthService: authService}
	menuHandler := &http.MenuHandler{MenuService: menuService}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, menuHandler, options.JWTSecret, options.UploadsDir, zapLogger)

	server := &nethttp.Server{
		Addr:    addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
