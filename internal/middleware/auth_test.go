package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"anicms/internal/auth"
	"anicms/internal/authz"
	"anicms/internal/config"
	"anicms/internal/models"
	"anicms/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserFinder struct {
	user *models.User
}

func (s *stubUserFinder) FindByEmail(_ context.Context, _ string) (*models.User, error) {
	return s.user, nil
}

func (s *stubUserFinder) GetByID(_ context.Context, _ string) (*models.User, error) {
	return s.user, nil
}

func newTestRouter(authSvc service.AuthService, cap authz.Capability) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	protected := r.Group("/admin")
	protected.Use(AuthMiddleware(authSvc))
	protected.GET("/resource", RequireCapability(cap), func(c *gin.Context) {
		actor, _ := ActorFrom(c)
		c.JSON(http.StatusOK, gin.H{"user_id": actor.UserID})
	})
	return r
}

func issueTokens(t *testing.T, user *models.User) (service.AuthService, string, string) {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:       "middleware-test-secret-long-enough!!",
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
	}
	svc := service.NewAuthService(&stubUserFinder{user: user}, cfg)
	access, refresh, _, err := svc.Login(context.Background(), user.Email, "pw")
	require.NoError(t, err)
	return svc, access, refresh
}

func editorUser(t *testing.T) *models.User {
	t.Helper()
	hash, err := auth.HashPassword("pw")
	require.NoError(t, err)
	return &models.User{
		ID:          "11111111-2222-3333-4444-555555555555",
		Name:        "Editor",
		Email:       "editor@example.com",
		Password:    hash,
		Permissions: []models.Permission{{Name: string(authz.CapPageAnime)}},
	}
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	svc, _, _ := issueTokens(t, editorUser(t))
	r := newTestRouter(svc, authz.CapPageAnime)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/resource", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsRefreshToken(t *testing.T) {
	svc, _, refresh := issueTokens(t, editorUser(t))
	r := newTestRouter(svc, authz.CapPageAnime)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/resource", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireCapabilityAllowsGrantedActor(t *testing.T) {
	user := editorUser(t)
	svc, access, _ := issueTokens(t, user)
	r := newTestRouter(svc, authz.CapPageAnime)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/resource", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), user.ID)
}

func TestRequireCapabilityRedirectsDeniedActor(t *testing.T) {
	svc, access, _ := issueTokens(t, editorUser(t))
	// the editor has page-anime but not delete-anime
	r := newTestRouter(svc, authz.CapDeleteAnime)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/resource", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "error=")
}

func TestRequireCapabilityAdminBypass(t *testing.T) {
	user := editorUser(t)
	user.Permissions = nil
	user.Roles = []models.Role{{Name: models.RoleAdmin}}
	svc, access, _ := issueTokens(t, user)
	r := newTestRouter(svc, authz.CapManagePermissions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/resource", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
