package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jwebster45206/battle-engine/internal/services/queue"
	"github.com/jwebster45206/battle-engine/pkg/generator"
	jobs "github.com/jwebster45206/battle-engine/pkg/queue"
)

func main() {
	redisURL := flag.String("redis", "redis://localhost:6379", "redis URL")
	days := flag.Int("days", 7, "days to schedule")
	seed := flag.Int64("seed", 12345, "base seed")
	template := flag.String("template", "Romans vs. Samurai;Mongols vs. Vikings", "semicolon separated matchup rows")
	wait := flag.Duration("wait", 30*time.Second, "how long to poll for the result; 0 to skip")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	client, err := queue.NewClient(*redisURL, logger)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer client.Close()

	fmt.Println("Connected to Redis successfully!")

	q := queue.NewJobQueue(client)
	ctx := context.Background()

	job, err := q.Enqueue(ctx, jobs.ScheduleRequest{
		Template: strings.Split(*template, ";"),
		Days:     *days,
		Seed:     *seed,
		Config:   generator.DefaultConfig(),
	})
	if err != nil {
		log.Fatal("Failed to enqueue job:", err)
	}
	fmt.Printf("✅ Enqueued schedule job: %s\n", job.ID)

	depth, err := q.Depth(ctx)
	if err != nil {
		log.Fatal("Failed to get queue depth:", err)
	}
	fmt.Printf("Queue depth: %d\n", depth)

	if *wait <= 0 {
		return
	}
	deadline := time.Now().Add(*wait)
	for time.Now().Before(deadline) {
		current, err := q.Get(ctx, job.ID)
		if err != nil {
			log.Fatal("Failed to read job:", err)
		}
		if current.Status.Terminal() {
			fmt.Printf("Job %s: %s %s\n", current.ID, current.Status, current.Error)
			for _, r := range current.Records {
				fmt.Printf("  %s  %-30s winner: %s\n", r.Day, r.Matchup, r.Winner)
			}
			return
		}
		time.Sleep(500 * time.Millisecond)
	}
	fmt.Println("Timed out waiting for a worker")
}
