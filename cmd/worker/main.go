package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jwebster45206/battle-engine/internal/config"
	"github.com/jwebster45206/battle-engine/internal/logger"
	"github.com/jwebster45206/battle-engine/internal/services/events"
	"github.com/jwebster45206/battle-engine/internal/services/queue"
	"github.com/jwebster45206/battle-engine/internal/storage"
	"github.com/jwebster45206/battle-engine/internal/worker"
	"github.com/jwebster45206/battle-engine/pkg/generator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	log := logger.Setup(cfg)

	log.Info("Starting Battle Engine Worker",
		"environment", cfg.Environment,
		"redis_url", cfg.RedisURL)

	queueClient, err := queue.NewClient(cfg.RedisURL, log)
	if err != nil {
		log.Error("Failed to create queue client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := queueClient.Close(); err != nil {
			log.Error("Error closing queue client", "error", err)
		}
	}()
	jobs := queue.NewJobQueue(queueClient)
	log.Info("Queue service initialized successfully")

	overrides, err := storage.LoadOverrides(cfg.DataDir, log)
	if err != nil {
		log.Error("Failed to load overrides", "error", err)
		os.Exit(1)
	}
	gen := generator.New(overrides.Registry(), overrides.Styles(), log)

	var archive worker.ScheduleArchive
	if cfg.ArchivePath != "" {
		a, err := storage.OpenArchive(cfg.ArchivePath)
		if err != nil {
			log.Error("Failed to open archive", "error", err, "path", cfg.ArchivePath)
			os.Exit(1)
		}
		defer a.Close()
		archive = a
	}

	broadcaster := events.NewBroadcaster(queueClient.GetRedisClient(), log)
	processor := worker.NewScheduleProcessor(gen, jobs, archive, log).WithNotifier(broadcaster)
	w := worker.New(jobs, processor, log, cfg.WorkerID)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := w.Start(); err != nil {
			log.Error("Worker error", "error", err)
			os.Exit(1)
		}
	}()

	log.Info("Worker started, waiting for jobs...", "worker_id", w.ID())

	<-quit
	log.Info("Worker shutdown signal received")

	w.Stop()

	// Give worker time to finish current job
	time.Sleep(2 * time.Second)

	log.Info("Worker exited")
}
