package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/webloom-dev/webloom/internal/interfaces/http/handlers"
	"github.com/webloom-dev/webloom/internal/interfaces/http/middleware"
)

// SectionRouteConfig holds dependencies for section routes.
type SectionRouteConfig struct {
	SectionHandler *handlers.SectionHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupSectionRoutes configures section routes. Section creation lives
// under the page routes.
func SetupSectionRoutes(api *gin.RouterGroup, cfg *SectionRouteConfig) {
	sections := api.Group("/sections")
	sections.Use(cfg.AuthMiddleware.RequireAuth())
	{
		sections.POST("/reorder", cfg.SectionHandler.Reorder)
		sections.GET("/:id", cfg.SectionHandler.Get)
		sections.PUT("/:id", cfg.SectionHandler.Update)
		sections.DELETE("/:id", cfg.SectionHandler.Delete)
	}
}
