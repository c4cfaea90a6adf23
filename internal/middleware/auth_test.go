package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-adp-views/internal/models"
	"github.com/noah-isme/sma-adp-views/internal/service"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	auth := service.NewAuthService(nil, nil, service.AuthConfig{AccessTokenSecret: "secret", AccessTokenExpiry: time.Hour})
	r := gin.New()
	views := r.Group("/views", JWT(auth))
	views.GET("/classes/:id", RequireRoles(models.RoleAdmin, models.RoleTeacher), func(c *gin.Context) { c.Status(http.StatusOK) })
	views.GET("/faculty/:id", RequireRolesOrSelf("id", models.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r, auth
}

func bearer(t *testing.T, auth *service.AuthService, userID string, role models.UserRole) string {
	t.Helper()
	token, _, err := auth.IssueToken(service.TokenRequest{UserID: userID, Role: role})
	require.NoError(t, err)
	return "Bearer " + token
}

func call(r http.Handler, path, authorization string) int {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec.Code
}

func TestJWTRequiresBearerToken(t *testing.T) {
	r, _ := newAuthRouter(t)

	assert.Equal(t, http.StatusUnauthorized, call(r, "/views/classes/c1", ""))
	assert.Equal(t, http.StatusUnauthorized, call(r, "/views/classes/c1", "Basic abc"))
	assert.Equal(t, http.StatusUnauthorized, call(r, "/views/classes/c1", "Bearer not-a-token"))
}

func TestRBACRoles(t *testing.T) {
	r, auth := newAuthRouter(t)

	assert.Equal(t, http.StatusOK, call(r, "/views/classes/c1", bearer(t, auth, "t1", models.RoleTeacher)))
	assert.Equal(t, http.StatusForbidden, call(r, "/views/classes/c1", bearer(t, auth, "u1", models.RoleStudent)))
}

func TestRBACSelf(t *testing.T) {
	r, auth := newAuthRouter(t)
	student := bearer(t, auth, "u1", models.RoleStudent)

	assert.Equal(t, http.StatusOK, call(r, "/views/faculty/u1", student))
	assert.Equal(t, http.StatusForbidden, call(r, "/views/faculty/u2", student))
	assert.Equal(t, http.StatusOK, call(r, "/views/faculty/u2", bearer(t, auth, "a1", models.RoleAdmin)))
}
