package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/webloom-dev/webloom/internal/interfaces/http/handlers"
	"github.com/webloom-dev/webloom/internal/interfaces/http/middleware"
)

func TestSetupAuthRoutes_Paths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	noop := func(*gin.Context) {}
	SetupAuthRoutes(engine.Group("/api"), &AuthRouteConfig{
		AuthHandler:     &handlers.AuthHandler{},
		AuthMiddleware:  &middleware.AuthMiddleware{},
		LoginLimiter:    noop,
		RegisterLimiter: noop,
	})

	registered := map[string]bool{}
	for _, r := range engine.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	assert.True(t, registered["POST /api/auth/register"])
	assert.True(t, registered["POST /api/auth/login"])
	assert.True(t, registered["POST /api/auth/refresh-token"])
	assert.True(t, registered["POST /api/auth/forgot-password"])
	assert.True(t, registered["POST /api/auth/reset-password"])
	assert.True(t, registered["POST /api/auth/logout"])
	assert.True(t, registered["GET /api/auth/me"])
}
