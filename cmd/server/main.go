// Package main initializes and starts the notelink HTTP server,
// setting up configuration, logging, the database connection, migrations,
// repositories, services and handlers.
package main

import (
	"cmp"
	"fmt"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/apetrenko/notelink/internal/config"
	"github.com/apetrenko/notelink/internal/db"
	"github.com/apetrenko/notelink/internal/logger"
	"github.com/apetrenko/notelink/internal/metrics"
	"github.com/apetrenko/notelink/internal/repository"
	"github.com/apetrenko/notelink/internal/server/handler/http"
	"github.com/apetrenko/notelink/internal/service"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()
	addr := options.Addr

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

	// Initialize PostgreSQL connection.
	postgresDB, err := db.InitPostgres(options.DatabaseDSN)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Apply schema migrations before serving any request.
	if err := db.RunMigrations(options.MigrationsPath, options.DatabaseDSN); err != nil {
		zapLogger.Fatal("cannot run migrations", zap.Error(err))
	}

	// Register Prometheus collectors.
	metrics.Init()

	// Initialize repositories for users and notes.
	userRepo := repository.NewPostgresUserRepository(postgresDB)
	noteRepo := repository.NewPostgresNoteRepository(postgresDB)

	// Initialize business-logic services.
	authService := service.NewAuthService(userRepo)
	noteService := service.NewNoteService(noteRepo)

	// Create HTTP handlers for accounts, notes and public sharing.
	authHandler := &http.AuthHandler{AuthService: authService}
	noteHandler := &http.NoteHandler{NoteService: noteService}
	shareHandler := &http.ShareHandler{ShareService: noteService}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, noteHandler, shareHandler, zapLogger)

	// Create and start the HTTP server.
	server := &nethttp.Server{
		Addr:    addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
