package main

import (
	"context"
	"log"

	"sheetsync/internal/config"
	"sheetsync/internal/database"
	"sheetsync/internal/handlers"
	"sheetsync/internal/pipeline"
	"sheetsync/internal/scheduler"
	"sheetsync/internal/sheets"
	"sheetsync/internal/worker"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	ctx := context.Background()
	source, err := sheets.NewGoogleSource(ctx, cfg.CredentialsFile, cfg.SheetID, cfg.SheetTab)
	if err != nil {
		log.Fatalf("Failed to initialize sheets client: %v", err)
	}

	pipe := pipeline.New(source, db, cfg.SyncTimeout)
	runner := worker.NewRunner(pipe)
	runner.Start(ctx)

	if cfg.SyncCron != "" {
		sched := scheduler.New(cfg.SyncCron, runner)
		if err := sched.Start(); err != nil {
			log.Fatalf("Failed to start scheduler: %v", err)
		}
		defer sched.Stop()
		log.Printf("Periodic sync enabled: %q", cfg.SyncCron)
	}

	router := handlers.NewRouter(handlers.NewSyncHandler(cfg.WebhookSecret, runner, db))

	listenAddr := ":" + cfg.Port
	log.Printf("Starting sheet sync service on %s (sheet %s, tab %q)", listenAddr, cfg.SheetID, cfg.SheetTab)
	if err := router.Run(listenAddr); err != nil {
		log.Fatalf("Failed to start sheet sync service: %v", err)
	}
}
