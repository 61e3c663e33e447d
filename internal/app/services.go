package app

import (
	"os"

	"gorm.io/gorm"

	redisclient "github.com/coursewave/coursewave-backend/internal/clients/redis"
	"github.com/coursewave/coursewave-backend/internal/logger"
	"github.com/coursewave/coursewave-backend/internal/publish"
	"github.com/coursewave/coursewave-backend/internal/scheduler"
	"github.com/coursewave/coursewave-backend/internal/services"
)

type Services struct {
	Auth          services.AuthService
	Program       services.ProgramService
	Term          services.TermService
	Lesson        services.LessonService
	Asset         services.AssetService
	Catalog       services.CatalogService
	AssetRegistry publish.AssetRegistry
	Orchestrator  *publish.Orchestrator
	Scheduler     *scheduler.Loop
	Cache         redisclient.Cache
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos) (Services, error) {
	log.Info("Wiring services...")

	// The cache is optional: without REDIS_ADDR the catalog reads straight
	// from the database.
	var cache redisclient.Cache
	if os.Getenv("REDIS_ADDR") != "" {
		c, err := redisclient.NewCache(log)
		if err != nil {
			return Services{}, err
		}
		cache = c
	} else {
		log.Info("REDIS_ADDR not set, catalog cache disabled")
	}

	registry := services.NewAssetRegistry(log, r.Asset)
	orch := publish.NewOrchestrator(db, log, r.Lesson, r.Term, r.Program, registry)
	loop := scheduler.NewLoop(log, r.Lesson, orch, cfg.SchedulerInterval, cfg.SchedulerParallelism)

	return Services{
		Auth:          services.NewAuthService(db, log, r.User, cfg.JWTSecretKey, cfg.AccessTokenTTL),
		Program:       services.NewProgramService(db, log, r.Program, r.Term, r.Lesson, r.Asset),
		Term:          services.NewTermService(db, log, r.Program, r.Term, r.Lesson, r.Asset),
		Lesson:        services.NewLessonService(db, log, r.Term, r.Lesson, r.Asset),
		Asset:         services.NewAssetService(db, log, r.Program, r.Lesson, r.Asset),
		Catalog:       services.NewCatalogService(db, log, r.Program, r.Term, r.Lesson, cache),
		AssetRegistry: registry,
		Orchestrator:  orch,
		Scheduler:     loop,
		Cache:         cache,
	}, nil
}
