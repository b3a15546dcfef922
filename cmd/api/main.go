package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jwebster45206/battle-engine/internal/config"
	"github.com/jwebster45206/battle-engine/internal/handlers"
	"github.com/jwebster45206/battle-engine/internal/logger"
	"github.com/jwebster45206/battle-engine/internal/middleware"
	"github.com/jwebster45206/battle-engine/internal/services/queue"
	"github.com/jwebster45206/battle-engine/internal/storage"
	"github.com/jwebster45206/battle-engine/pkg/generator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	log := logger.Setup(cfg)

	log.Info("Starting Battle Engine API",
		"port", cfg.Port,
		"environment", cfg.Environment,
		"data_dir", cfg.DataDir)

	overrides, err := storage.LoadOverrides(cfg.DataDir, log)
	if err != nil {
		log.Error("Failed to load overrides", "error", err)
		os.Exit(1)
	}
	gen := generator.New(overrides.Registry(), overrides.Styles(), log)

	cache, err := storage.NewRedisCache(cfg.RedisURL, cfg.CacheTTL, log)
	if err != nil {
		log.Error("Failed to create record cache", "error", err)
		os.Exit(1)
	}
	waitCtx, waitCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer waitCancel()
	if err := cache.WaitForConnection(waitCtx, 30, 2*time.Second); err != nil {
		log.Error("Failed to connect to cache", "error", err)
		os.Exit(1)
	}
	log.Info("Cache connection established successfully")

	queueClient, err := queue.NewClient(cfg.RedisURL, log)
	if err != nil {
		log.Error("Failed to create queue client", "error", err)
		os.Exit(1)
	}
	jobs := queue.NewJobQueue(queueClient)

	var scheduleArchive handlers.ScheduleArchive
	var tournamentArchive handlers.TournamentArchive
	var archive *storage.Archive
	if cfg.ArchivePath != "" {
		archive, err = storage.OpenArchive(cfg.ArchivePath)
		if err != nil {
			log.Error("Failed to open archive", "error", err, "path", cfg.ArchivePath)
			os.Exit(1)
		}
		scheduleArchive, tournamentArchive = archive, archive
		log.Info("Archive opened", "path", cfg.ArchivePath)
	}

	mux := http.NewServeMux()

	mux.Handle("/health", handlers.NewHealthHandler(map[string]handlers.Pinger{
		"cache": cache,
		"queue": queueClient,
	}, log))
	mux.Handle("/v1/factions", handlers.NewFactionsHandler(gen.Registry(), log))
	mux.Handle("/v1/battles", handlers.NewBattleHandler(gen, cache, cfg.DefaultSeed, log))

	scheduleHandler := handlers.NewScheduleHandler(gen, jobs, scheduleArchive, cfg.DefaultSeed, log)
	mux.Handle("/v1/schedules", scheduleHandler)
	mux.Handle("/v1/schedules/", scheduleHandler)

	tournamentHandler := handlers.NewTournamentHandler(gen, tournamentArchive, cfg.DefaultSeed, log)
	mux.Handle("/v1/tournaments", tournamentHandler)
	mux.Handle("/v1/tournaments/", tournamentHandler)
	mux.Handle("/v1/exports", handlers.NewExportHandler(gen, overrides.Files, cfg.DefaultSeed, log))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      middleware.Logger(log, mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Server is shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}

	if err := cache.Close(); err != nil {
		log.Error("Error closing cache connection", "error", err)
	}
	if err := queueClient.Close(); err != nil {
		log.Error("Error closing queue client", "error", err)
	}
	if archive != nil {
		if err := archive.Close(); err != nil {
			log.Error("Error closing archive", "error", err)
		}
	}

	log.Info("Server exited")
}
