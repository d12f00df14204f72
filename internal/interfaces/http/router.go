// Package http assembles the Gin engine: global middleware, health check,
// and the per-domain route groups under /api.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webloom-dev/webloom/internal/infrastructure/config"
	"github.com/webloom-dev/webloom/internal/infrastructure/ratelimit"
	"github.com/webloom-dev/webloom/internal/interfaces/http/middleware"
	"github.com/webloom-dev/webloom/internal/interfaces/http/routes"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

type Router struct {
	engine    *gin.Engine
	container *Container
	cfg       *config.Config
	logger    logger.Interface
}

func NewRouter(container *Container, cfg *config.Config, log logger.Interface) *Router {
	RegisterValidators()

	engine := gin.New()

	return &Router{
		engine:    engine,
		container: container,
		cfg:       cfg,
		logger:    log,
	}
}

// SetupRoutes registers global middleware and all route groups.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    r.container.AuthHandler,
		AuthMiddleware: r.container.AuthMiddleware,
		LoginLimiter: middleware.RateLimit(r.container.RateLimiter, "login", ratelimit.RateLimitConfig{
			RequestsPerMinute: r.cfg.RateLimit.LoginPerMinute,
		}, r.logger),
		RegisterLimiter: middleware.RateLimit(r.container.RateLimiter, "register", ratelimit.RateLimitConfig{
			RequestsPerMinute: r.cfg.RateLimit.RegisterPerMinute,
		}, r.logger),
	})

	routes.SetupSiteRoutes(api, &routes.SiteRouteConfig{
		SiteHandler:    r.container.SiteHandler,
		PageHandler:    r.container.PageHandler,
		AuthMiddleware: r.container.AuthMiddleware,
	})

	routes.SetupPageRoutes(api, &routes.PageRouteConfig{
		PageHandler:    r.container.PageHandler,
		SectionHandler: r.container.SectionHandler,
		AuthMiddleware: r.container.AuthMiddleware,
	})

	routes.SetupSectionRoutes(api, &routes.SectionRouteConfig{
		SectionHandler: r.container.SectionHandler,
		AuthMiddleware: r.container.AuthMiddleware,
	})

	routes.SetupCreditsRoutes(api, &routes.CreditsRouteConfig{
		CreditsHandler: r.container.CreditsHandler,
		AuthMiddleware: r.container.AuthMiddleware,
	})

	routes.SetupPaymentRoutes(api, &routes.PaymentRouteConfig{
		PaymentHandler: r.container.PaymentHandler,
		AuthMiddleware: r.container.AuthMiddleware,
	})
}

// GetEngine returns the underlying Gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
