package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"comerciotech/internal/config"
	"comerciotech/internal/database"
	"comerciotech/internal/router"
	"comerciotech/internal/seed"
	"comerciotech/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	config.ConfigureLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stores, closeStore, err := openStores(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	defer closeStore()

	svc := service.New(stores)
	r := router.New(cfg, svc, stores.Pinger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().
			Int("port", cfg.Port).
			Str("store", cfg.StoreDriver).
			Str("database", cfg.DBName).
			Msg("ComercioTech API listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}

// openStores builds the configured backend. The returned func releases it.
func openStores(ctx context.Context, cfg *config.Config) (database.Stores, func(), error) {
	if cfg.StoreDriver == config.DriverMemory {
		stores := database.NewMemoryStores()
		if cfg.SeedOnStart {
			summary, err := seed.Import(ctx, stores)
			if err != nil {
				return database.Stores{}, nil, fmt.Errorf("seed: %w", err)
			}
			log.Info().Int64("documents", summary.Total()).Msg("sample data loaded")
		}
		return stores, func() {}, nil
	}

	client, err := database.Connect(ctx, cfg.MongoURI, cfg.DBTimeout)
	if err != nil {
		return database.Stores{}, nil, err
	}
	db := client.Database(cfg.DBName)
	log.Info().Str("database", db.Name()).Msg("MongoDB connected")

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Warn().Err(err).Msg("index warning")
	}

	closeFn := func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), cfg.DBTimeout)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}
	return database.NewMongoStores(client, db, cfg.DBTimeout), closeFn, nil
}
