package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/webloom-dev/webloom/internal/interfaces/http/handlers"
	"github.com/webloom-dev/webloom/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for auth routes.
type AuthRouteConfig struct {
	AuthHandler     *handlers.AuthHandler
	AuthMiddleware  *middleware.AuthMiddleware
	LoginLimiter    gin.HandlerFunc
	RegisterLimiter gin.HandlerFunc
}

// SetupAuthRoutes configures registration, session, and password recovery
// routes.
func SetupAuthRoutes(api *gin.RouterGroup, cfg *AuthRouteConfig) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", cfg.RegisterLimiter, cfg.AuthHandler.Register)
		auth.POST("/login", cfg.LoginLimiter, cfg.AuthHandler.Login)
		auth.POST("/refresh-token", cfg.AuthHandler.RefreshToken)
		auth.POST("/forgot-password", cfg.AuthHandler.ForgotPassword)
		auth.POST("/reset-password", cfg.AuthHandler.ResetPassword)

		authProtected := auth.Group("")
		authProtected.Use(cfg.AuthMiddleware.RequireAuth())
		{
			authProtected.POST("/logout", cfg.AuthHandler.Logout)
			authProtected.GET("/me", cfg.AuthHandler.Profile)
		}
	}
}
