package app

import (
	"github.com/gin-gonic/gin"

	"github.com/coursewave/coursewave-backend/internal/server"
)

func wireRouter(cfg Config, h Handlers, m Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		CORSOrigins:       cfg.CORSOrigins,
		AuthHandler:       h.Auth,
		AuthMiddleware:    m.Auth,
		ProgramHandler:    h.Program,
		TermHandler:       h.Term,
		LessonHandler:     h.Lesson,
		AssetHandler:      h.Asset,
		PublishingHandler: h.Publishing,
		CatalogHandler:    h.Catalog,
	})
}
