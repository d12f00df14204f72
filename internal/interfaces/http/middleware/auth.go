package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainUser "github.com/webloom-dev/webloom/internal/domain/user"
	"github.com/webloom-dev/webloom/internal/infrastructure/auth"
	"github.com/webloom-dev/webloom/internal/shared/constants"
	"github.com/webloom-dev/webloom/internal/shared/logger"
	"github.com/webloom-dev/webloom/internal/shared/utils"
)

// AuthMiddleware verifies bearer tokens and resolves the caller to a live
// account. The numeric user id lands in the context so handlers never work
// with public identifiers internally.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   domainUser.Repository
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, userRepo domainUser.Repository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token type")
			c.Abort()
			return
		}

		userEntity, err := m.userRepo.GetBySID(c.Request.Context(), claims.UserSID)
		if err != nil {
			m.logger.Errorw("failed to load user for auth", "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
			c.Abort()
			return
		}
		if userEntity == nil || !userEntity.IsActive() {
			utils.ErrorResponse(c, http.StatusUnauthorized, "account is not active")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, userEntity.ID())
		c.Set(constants.ContextKeyUserSID, userEntity.SID())
		c.Set(constants.ContextKeyUserRole, string(userEntity.Role()))
		c.Set(constants.ContextKeySessionID, claims.SessionID)

		c.Next()
	}
}
