package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/coursewave/coursewave-backend/internal/handlers"
	"github.com/coursewave/coursewave-backend/internal/middleware"
	"github.com/coursewave/coursewave-backend/internal/types"
)

type RouterConfig struct {
	CORSOrigins       []string
	AuthHandler       *handlers.AuthHandler
	AuthMiddleware    *middleware.AuthMiddleware
	ProgramHandler    *handlers.ProgramHandler
	TermHandler       *handlers.TermHandler
	LessonHandler     *handlers.LessonHandler
	AssetHandler      *handlers.AssetHandler
	PublishingHandler *handlers.PublishingHandler
	CatalogHandler    *handlers.CatalogHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// Public
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/api/login", cfg.AuthHandler.Login)
	catalog := router.Group("/catalog")
	{
		catalog.GET("/programs", cfg.CatalogHandler.ListPrograms)
		catalog.GET("/programs/:id", cfg.CatalogHandler.GetProgram)
	}

	// Admin surface
	api := router.Group("/api")
	api.Use(cfg.AuthMiddleware.RequireAuth())
	editors := api.Group("/")
	editors.Use(cfg.AuthMiddleware.RequireRole(types.RoleAdmin, types.RoleEditor))
	{
		// Programs
		editors.POST("/programs", cfg.ProgramHandler.Create)
		editors.GET("/programs", cfg.ProgramHandler.List)
		editors.GET("/programs/:id", cfg.ProgramHandler.Get)
		editors.PATCH("/programs/:id", cfg.ProgramHandler.Update)
		editors.POST("/programs/:id/archive", cfg.ProgramHandler.Archive)
		editors.GET("/programs/:id/terms", cfg.TermHandler.ListForProgram)
		// Terms
		editors.POST("/terms", cfg.TermHandler.Create)
		editors.DELETE("/terms/:id", cfg.TermHandler.Delete)
		editors.GET("/terms/:id/lessons", cfg.LessonHandler.ListForTerm)
		// Lessons
		editors.POST("/lessons", cfg.LessonHandler.Create)
		editors.GET("/lessons/:id", cfg.LessonHandler.Get)
		editors.PATCH("/lessons/:id", cfg.LessonHandler.Update)
		editors.POST("/lessons/:id/restore", cfg.LessonHandler.RestoreToDraft)
		// Publishing lifecycle
		editors.POST("/lessons/:id/publish", cfg.PublishingHandler.PublishNow)
		editors.POST("/lessons/:id/schedule", cfg.PublishingHandler.Schedule)
		editors.POST("/lessons/:id/archive", cfg.PublishingHandler.Archive)
		editors.POST("/lessons/:id/cancel-schedule", cfg.PublishingHandler.CancelSchedule)
		// Assets
		editors.POST("/assets", cfg.AssetHandler.Create)
		editors.GET("/assets", cfg.AssetHandler.List)
		editors.DELETE("/assets/:id", cfg.AssetHandler.Delete)
		// Operational
		editors.GET("/publishing/report", cfg.PublishingHandler.LastRunReport)
	}
	admins := api.Group("/")
	admins.Use(cfg.AuthMiddleware.RequireRole(types.RoleAdmin))
	{
		admins.POST("/users", cfg.AuthHandler.Register)
		admins.DELETE("/programs/:id", cfg.ProgramHandler.Delete)
		admins.DELETE("/lessons/:id", cfg.LessonHandler.Delete)
	}

	return router
}
