package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sparkmeet/sparkmeet-backend/pkg/jwt"
	"github.com/stretchr/testify/assert"
)

func setupAuthRouter(manager *jwt.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", JWTAuth(manager), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID":   GetUserID(c),
			"username": GetUsername(c),
		})
	})
	return router
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router := setupAuthRouter(jwt.NewManager("secret", 900, 86400))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_BadFormat(t *testing.T) {
	router := setupAuthRouter(jwt.NewManager("secret", 900, 86400))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	router := setupAuthRouter(jwt.NewManager("secret", 900, 86400))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ValidToken(t *testing.T) {
	manager := jwt.NewManager("secret", 900, 86400)
	router := setupAuthRouter(manager)

	token, err := manager.GenerateToken(7, "alice")
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
	assert.Contains(t, w.Body.String(), `"userID":7`)
}
