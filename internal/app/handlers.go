package app

import (
	"github.com/coursewave/coursewave-backend/internal/handlers"
	"github.com/coursewave/coursewave-backend/internal/logger"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	Program    *handlers.ProgramHandler
	Term       *handlers.TermHandler
	Lesson     *handlers.LessonHandler
	Asset      *handlers.AssetHandler
	Publishing *handlers.PublishingHandler
	Catalog    *handlers.CatalogHandler
}

func wireHandlers(log *logger.Logger, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Auth:       handlers.NewAuthHandler(s.Auth),
		Program:    handlers.NewProgramHandler(s.Program),
		Term:       handlers.NewTermHandler(s.Term),
		Lesson:     handlers.NewLessonHandler(s.Lesson),
		Asset:      handlers.NewAssetHandler(s.Asset),
		Publishing: handlers.NewPublishingHandler(s.Orchestrator, s.Scheduler),
		Catalog:    handlers.NewCatalogHandler(s.Catalog),
	}
}
