package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
}

func TestTokenExpiryHours(t *testing.T) {
	t.Setenv("JWT_EXPIRY_HOURS", "")
	assert.Equal(t, 24, TokenExpiryHours())

	t.Setenv("JWT_EXPIRY_HOURS", "8")
	assert.Equal(t, 8, TokenExpiryHours())

	// Bad values fall back rather than issuing an already-expired
	// cookie
	t.Setenv("JWT_EXPIRY_HOURS", "-3")
	assert.Equal(t, 24, TokenExpiryHours())
	t.Setenv("JWT_EXPIRY_HOURS", "soon")
	assert.Equal(t, 24, TokenExpiryHours())
}

func TestRoleAllowed(t *testing.T) {
	assert.True(t, RoleAllowed("owner", []string{"owner", "manager"}))
	assert.False(t, RoleAllowed("artist", []string{"owner", "manager"}))
	assert.False(t, RoleAllowed("", []string{"owner"}))
}

func protectedRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/p", AuthMiddleware())
	if len(roles) > 0 {
		group.Use(RequireRoles(roles...))
	}
	group.GET("", func(c *gin.Context) {
		role, _ := c.Get("role")
		c.JSON(http.StatusOK, gin.H{"role": role})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	token, err := GenerateToken("user-1", "manager")
	require.NoError(t, err)

	r := protectedRouter()

	// Bearer header accepted
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Session cookie accepted
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/p", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// No credentials
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/p", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Garbage token
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoles(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	r := protectedRouter("owner")

	ownerToken, err := GenerateToken("user-1", "owner")
	require.NoError(t, err)
	receptionToken, err := GenerateToken("user-2", "receptionist")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set("Authorization", "Bearer "+ownerToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Wrong role gets a 403, not a 401
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set("Authorization", "Bearer "+receptionToken)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
