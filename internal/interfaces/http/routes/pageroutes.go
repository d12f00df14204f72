package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/webloom-dev/webloom/internal/interfaces/http/handlers"
	"github.com/webloom-dev/webloom/internal/interfaces/http/middleware"
)

// PageRouteConfig holds dependencies for page routes.
type PageRouteConfig struct {
	PageHandler    *handlers.PageHandler
	SectionHandler *handlers.SectionHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupPageRoutes configures page routes, including the nested section
// collection. Page creation lives under the site routes.
func SetupPageRoutes(api *gin.RouterGroup, cfg *PageRouteConfig) {
	pages := api.Group("/pages")
	pages.Use(cfg.AuthMiddleware.RequireAuth())
	{
		pages.POST("/reorder", cfg.PageHandler.Reorder)
		pages.GET("/:id", cfg.PageHandler.Get)
		pages.PUT("/:id", cfg.PageHandler.Update)
		pages.DELETE("/:id", cfg.PageHandler.Delete)
		pages.POST("/:id/duplicate", cfg.PageHandler.Duplicate)
		pages.PUT("/:id/homepage", cfg.PageHandler.SetHomepage)

		pages.POST("/:id/sections", cfg.SectionHandler.Create)
		pages.GET("/:id/sections", cfg.SectionHandler.ListByPage)
	}
}
