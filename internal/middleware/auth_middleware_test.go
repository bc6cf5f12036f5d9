package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IqbalAbhipraya/eai-tubes/internal/federation"
	"github.com/IqbalAbhipraya/eai-tubes/internal/pkg/auth"
)

func newAuthFixture(t *testing.T) (*auth.JWTService, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "campus.test",
	})
	authMiddleware := NewAuthMiddleware(jwtService)

	router := gin.New()
	router.GET("/protected", authMiddleware.ViewerAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.GET("/teacher", authMiddleware.ViewerAuth(), authMiddleware.RequireTeacher(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return jwtService, router
}

func TestViewerAuthResolvesViewer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "campus.test",
	})
	authMiddleware := NewAuthMiddleware(jwtService)

	var viewer federation.Viewer
	router := gin.New()
	router.GET("/protected", authMiddleware.ViewerAuth(), func(c *gin.Context) {
		viewer, _ = ViewerFromContext(c)
		c.Status(http.StatusOK)
	})

	token, err := jwtService.GenerateToken(42, auth.RoleStudent)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, int64(42), viewer.StudentID)
	assert.Equal(t, federation.RoleStudent, viewer.Role)
}

func TestViewerAuthRejectsMissingToken(t *testing.T) {
	_, router := newAuthFixture(t)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestViewerAuthRejectsGarbageToken(t *testing.T) {
	_, router := newAuthFixture(t)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireTeacherBlocksStudents(t *testing.T) {
	jwtService, router := newAuthFixture(t)

	studentToken, err := jwtService.GenerateToken(1, auth.RoleStudent)
	require.NoError(t, err)
	teacherToken, err := jwtService.GenerateToken(0, auth.RoleTeacher)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/teacher", nil)
	req.Header.Set("Authorization", "Bearer "+studentToken)
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/teacher", nil)
	req.Header.Set("Authorization", "Bearer "+teacherToken)
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
