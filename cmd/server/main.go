// Package main is the entry point for the country guessing game server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"country-guess/internal/catalog"
	"country-guess/internal/config"
	"country-guess/internal/handler"
	"country-guess/internal/pkg/db"
	"country-guess/internal/pkg/session"
	"country-guess/internal/repository"
	"country-guess/internal/service"
)

func main() {
	// Configure zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load configuration
	cfg, err := config.Load("config")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log.Info().Msg("Configuration loaded successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	dbPool, err := db.NewPool(ctx, &cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer dbPool.Close()

	// Run database migrations
	if err := runMigrations(ctx, dbPool); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Initialize repositories
	countryRepo := repository.NewCountryRepository(dbPool.Pool)
	rankingRepo := repository.NewRankingRepository(dbPool.Pool)

	// Seed the country catalog (no-op when already populated)
	if err := countryRepo.Seed(ctx, catalog.Countries()); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed country catalog")
	}

	// Initialize the session store and its expiry janitor
	sessions := session.NewStore()
	sessions.StartJanitor(ctx, cfg.Session.SweepInterval, cfg.Session.TTL)

	// Initialize services
	gameService := service.NewGameService(countryRepo, rankingRepo, sessions, cfg.Game.MaxWrongGuesses)
	leaderboardService := service.NewLeaderboardService(rankingRepo, cfg.Game.LeaderboardSize)

	// Initialize HTTP server
	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: handler.NewRouter(cfg, gameService, leaderboardService),
	}

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info().Str("addr", cfg.Server.Addr()).Msg("Server is starting...")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server exited")
		}
	}()

	sig := <-sigChan
	log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
	log.Info().Msg("Server stopped gracefully")
}

// runMigrations executes database migrations.
func runMigrations(ctx context.Context, pool *db.Pool) error {
	log.Info().Msg("Running database migrations...")

	// Migration 1: Create countries table
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS countries (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			initial_letter CHAR(1) NOT NULL,
			flag_code CHAR(2) NOT NULL,
			difficulty TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_countries_difficulty ON countries(difficulty);
	`)
	if err != nil {
		return err
	}
	log.Info().Msg("Migration 1: countries table created")

	// Migration 2: Create rankings table
	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS rankings (
			id BIGSERIAL PRIMARY KEY,
			player_name VARCHAR(50) NOT NULL,
			country_name TEXT NOT NULL,
			time_spent DOUBLE PRECISION NOT NULL,
			attempts INT NOT NULL,
			difficulty TEXT NOT NULL,
			city VARCHAR(100),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_rankings_difficulty_time ON rankings(difficulty, time_spent, attempts);
	`)
	if err != nil {
		return err
	}
	log.Info().Msg("Migration 2: rankings table created")

	log.Info().Msg("All migrations completed successfully")
	return nil
}
