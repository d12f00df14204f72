package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/webloom-dev/webloom/internal/interfaces/http/handlers"
	"github.com/webloom-dev/webloom/internal/interfaces/http/middleware"
)

// SiteRouteConfig holds dependencies for site routes.
type SiteRouteConfig struct {
	SiteHandler    *handlers.SiteHandler
	PageHandler    *handlers.PageHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupSiteRoutes configures site routes, including the nested page
// collection.
func SetupSiteRoutes(api *gin.RouterGroup, cfg *SiteRouteConfig) {
	sites := api.Group("/sites")
	sites.Use(cfg.AuthMiddleware.RequireAuth())
	{
		sites.POST("", cfg.SiteHandler.Create)
		sites.GET("", cfg.SiteHandler.List)
		sites.GET("/:id", cfg.SiteHandler.Get)
		sites.PUT("/:id", cfg.SiteHandler.Update)
		sites.DELETE("/:id", cfg.SiteHandler.Delete)

		sites.POST("/:id/publish", cfg.SiteHandler.Publish)
		sites.POST("/:id/unpublish", cfg.SiteHandler.Unpublish)
		sites.POST("/:id/duplicate", cfg.SiteHandler.Duplicate)
		sites.POST("/:id/transfer-ownership", cfg.SiteHandler.TransferOwnership)
		sites.GET("/:id/stats", cfg.SiteHandler.Stats)

		sites.POST("/:id/pages", cfg.PageHandler.Create)
		sites.GET("/:id/pages", cfg.PageHandler.ListBySite)
	}
}
