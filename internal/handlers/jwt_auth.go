package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lacpaorocelyn/cpsunav/internal/auth"
)

// JWTAuthMiddleware validates bearer tokens and loads their claims into
// the request context.
type JWTAuthMiddleware struct {
	secret string
}

func NewJWTAuthMiddleware(secret string) *JWTAuthMiddleware {
	return &JWTAuthMiddleware{secret: secret}
}

func (m *JWTAuthMiddleware) claimsFrom(c *gin.Context) (*auth.Claims, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, false
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return nil, false
	}
	claims, err := auth.ParseToken(m.secret, token)
	if err != nil {
		return nil, false
	}
	return claims, true
}

// RequireAuth rejects requests without a valid bearer token.
func (m *JWTAuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := m.claimsFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Message: "Authentication required",
			})
			return
		}
		c.Set("user_id", claims.UserID)
		c.Set("student_id", claims.StudentID)
		c.Next()
	}
}

// OptionalAuth attaches claims when a valid bearer token is present but
// never rejects the request. Report writes use this: anonymous
// submissions are allowed, authenticated ones get an owner.
func (m *JWTAuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := m.claimsFrom(c); ok {
			c.Set("user_id", claims.UserID)
			c.Set("student_id", claims.StudentID)
		}
		c.Next()
	}
}

// currentUserID returns the authenticated user id, if any.
func currentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
