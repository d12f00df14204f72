package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/webloom-dev/webloom/internal/application/access"
	"github.com/webloom-dev/webloom/internal/shared/authorization"
	"github.com/webloom-dev/webloom/internal/shared/constants"
)

// actorFromContext builds the caller identity set by the auth middleware.
// Returns false when the request never passed through RequireAuth.
func actorFromContext(c *gin.Context) (access.Actor, bool) {
	rawID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return access.Actor{}, false
	}
	userID, ok := rawID.(uint)
	if !ok {
		return access.Actor{}, false
	}

	return access.Actor{
		UserID: userID,
		Role:   authorization.UserRole(c.GetString(constants.ContextKeyUserRole)),
	}, true
}
