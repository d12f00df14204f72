package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/webloom-dev/webloom/internal/interfaces/http/handlers"
	"github.com/webloom-dev/webloom/internal/interfaces/http/middleware"
	"github.com/webloom-dev/webloom/internal/shared/authorization"
)

// CreditsRouteConfig holds dependencies for credit routes.
type CreditsRouteConfig struct {
	CreditsHandler *handlers.CreditsHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupCreditsRoutes configures AI credit routes. Granting and reset
// frequency changes require the admin role.
func SetupCreditsRoutes(api *gin.RouterGroup, cfg *CreditsRouteConfig) {
	credits := api.Group("/credits")
	credits.Use(cfg.AuthMiddleware.RequireAuth())
	{
		credits.GET("", cfg.CreditsHandler.Balance)
		credits.POST("/consume", cfg.CreditsHandler.Consume)

		admin := credits.Group("")
		admin.Use(authorization.RequireAdmin())
		{
			admin.POST("/grant", cfg.CreditsHandler.Grant)
			admin.PUT("/frequency", cfg.CreditsHandler.UpdateResetFrequency)
		}
	}
}
