package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainUser "github.com/webloom-dev/webloom/internal/domain/user"
	vo "github.com/webloom-dev/webloom/internal/domain/user/valueobjects"
	"github.com/webloom-dev/webloom/internal/infrastructure/auth"
	"github.com/webloom-dev/webloom/internal/shared/authorization"
	"github.com/webloom-dev/webloom/internal/shared/constants"
	"github.com/webloom-dev/webloom/internal/shared/id"
	"github.com/webloom-dev/webloom/internal/shared/logger"
)

type memUserRepo struct {
	domainUser.Repository
	users []*domainUser.User
}

func (r *memUserRepo) GetBySID(_ context.Context, sid string) (*domainUser.User, error) {
	for _, u := range r.users {
		if u.SID() == sid {
			return u, nil
		}
	}
	return nil, nil
}

func newTestUser(t *testing.T, userID uint) *domainUser.User {
	t.Helper()

	email, err := vo.NewEmail("owner@example.com")
	require.NoError(t, err)

	u, err := domainUser.NewUser(email, "hashed", domainUser.PlanLimits{
		MaxSites:           10,
		MaxPagesPerSite:    50,
		MaxSectionsPerPage: 50,
	}, id.NewUserID)
	require.NoError(t, err)
	u.SetID(userID)
	return u
}

func setupAuthRouter(t *testing.T, repo *memUserRepo, jwtService *auth.JWTService) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	engine := gin.New()

	mw := NewAuthMiddleware(jwtService, repo, logger.NewNop())
	engine.GET("/protected", mw.RequireAuth(), func(c *gin.Context) {
		rawID, _ := c.Get(constants.ContextKeyUserID)
		c.JSON(http.StatusOK, gin.H{
			"user_id": rawID,
			"role":    c.GetString(constants.ContextKeyUserRole),
		})
	})

	return engine
}

func TestRequireAuth_MissingAndMalformedHeaders(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 15, 7)
	engine := setupAuthRouter(t, &memUserRepo{}, jwtService)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_RejectsRefreshToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 15, 7)
	user := newTestUser(t, 1)
	engine := setupAuthRouter(t, &memUserRepo{users: []*domainUser.User{user}}, jwtService)

	tokens, err := jwtService.Generate(user.SID(), "session-1", authorization.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.RefreshToken)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 15, 7)
	user := newTestUser(t, 42)
	engine := setupAuthRouter(t, &memUserRepo{users: []*domainUser.User{user}}, jwtService)

	tokens, err := jwtService.Generate(user.SID(), "session-1", authorization.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":42`)
	assert.Contains(t, rec.Body.String(), `"role":"user"`)
}

func TestRequireAuth_UnknownOrInactiveUser(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 15, 7)

	// token for a user that does not exist anymore
	engine := setupAuthRouter(t, &memUserRepo{}, jwtService)
	tokens, err := jwtService.Generate("usr_gone", "session-1", authorization.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// deactivated account
	user := newTestUser(t, 7)
	user.Deactivate()
	engine = setupAuthRouter(t, &memUserRepo{users: []*domainUser.User{user}}, jwtService)

	tokens, err = jwtService.Generate(user.SID(), "session-2", authorization.RoleUser)
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
