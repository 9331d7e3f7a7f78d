package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"platecost/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxTenantIDKey   = "tenant_id"
	ctxTenantSlugKey = "tenant_slug"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"code": http.StatusUnauthorized, "message": "Access token required"},
			})
			c.Abort()
			return
		}

		tenantID, tenantSlug, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"code": http.StatusUnauthorized, "message": "Invalid or expired token"},
			})
			c.Abort()
			return
		}

		c.Set(ctxTenantIDKey, tenantID)
		c.Set(ctxTenantSlugKey, tenantSlug)
		c.Set("jwt_claims", map[string]any{
			"tenant_id":   tenantID.String(),
			"tenant_slug": tenantSlug,
		})
		c.Next()
	}
}

// RequireTenantSlug ensures the authenticated tenant matches the :slug path
// segment, so one tenant's token can never act on another tenant's routes.
func (m *AuthMiddleware) RequireTenantSlug() gin.HandlerFunc {
	return func(c *gin.Context) {
		slug, ok := GetTenantSlug(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{"code": http.StatusInternalServerError, "message": "Internal server error"},
			})
			c.Abort()
			return
		}

		if c.Param("slug") != slug {
			c.JSON(http.StatusForbidden, gin.H{
				"error": gin.H{"code": http.StatusForbidden, "message": "Insufficient permissions"},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetTenantID(c *gin.Context) (uuid.UUID, bool) {
	tenantID, exists := c.Get(ctxTenantIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := tenantID.(uuid.UUID)
	return id, ok
}

func GetTenantSlug(c *gin.Context) (string, bool) {
	tenantSlug, exists := c.Get(ctxTenantSlugKey)
	if !exists {
		return "", false
	}

	slug, ok := tenantSlug.(string)
	return slug, ok
}
