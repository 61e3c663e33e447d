package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/coursewave/coursewave-backend/internal/app"
	"github.com/coursewave/coursewave-backend/internal/db"
	"github.com/coursewave/coursewave-backend/internal/logger"
	"github.com/coursewave/coursewave-backend/internal/publish"
	"github.com/coursewave/coursewave-backend/internal/repos"
	"github.com/coursewave/coursewave-backend/internal/scheduler"
	"github.com/coursewave/coursewave-backend/internal/services"
)

// Standalone publish scheduler. Runs the same loop the server embeds, as its
// own process, for deployments that keep the API stateless.
func main() {
	_ = godotenv.Load()

	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	cfg := app.LoadConfig(log)

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	theDB := pg.DB()

	lessonRepo := repos.NewLessonRepo(theDB, log)
	termRepo := repos.NewTermRepo(theDB, log)
	programRepo := repos.NewProgramRepo(theDB, log)
	assetRepo := repos.NewAssetRepo(theDB, log)

	registry := services.NewAssetRegistry(log, assetRepo)
	orch := publish.NewOrchestrator(theDB, log, lessonRepo, termRepo, programRepo, registry)
	loop := scheduler.NewLoop(log, lessonRepo, orch, cfg.SchedulerInterval, cfg.SchedulerParallelism)

	ctx, cancel := context.WithCancel(context.Background())
	loop.Start(ctx)
	log.Info("Publish scheduler running", "interval", cfg.SchedulerInterval, "parallelism", cfg.SchedulerParallelism)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("Shutting down publish scheduler")
	cancel()
}
