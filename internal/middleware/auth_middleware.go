package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IqbalAbhipraya/eai-tubes/internal/app/models/dto"
	"github.com/IqbalAbhipraya/eai-tubes/internal/federation"
	"github.com/IqbalAbhipraya/eai-tubes/internal/pkg/auth"
)

// viewerKey is the gin context key the authenticated viewer lives under.
const viewerKey = "viewer"

// AuthMiddleware resolves the per-request viewer from a bearer token. The
// viewer is request-scoped state; nothing identity-related is ever cached
// between requests.
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// ViewerAuth validates the bearer token and stores the resulting viewer in
// the request context.
func (m *AuthMiddleware) ViewerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("Authorization header missing or malformed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			details := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				errorCode = dto.ErrorCodeExpiredToken
				details = "Token has expired"
			}

			errorDetail := dto.NewErrorDetail(errorCode, "Authentication failed").WithDetails(details)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(viewerKey, federation.Viewer{
			StudentID: claims.StudentID,
			Role:      federation.Role(claims.Role),
		})

		c.Next()
	}
}

// RequireTeacher rejects requests whose viewer does not hold the teacher
// role. It must run after ViewerAuth.
func (m *AuthMiddleware) RequireTeacher() gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer, ok := ViewerFromContext(c)
		if !ok || viewer.Role != federation.RoleTeacher {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Teacher role required")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}
		c.Next()
	}
}

// ViewerFromContext returns the viewer ViewerAuth stored for this request
func ViewerFromContext(c *gin.Context) (federation.Viewer, bool) {
	value, exists := c.Get(viewerKey)
	if !exists {
		return federation.Viewer{}, false
	}
	viewer, ok := value.(federation.Viewer)
	return viewer, ok
}
