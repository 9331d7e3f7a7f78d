package middleware

import (
	"crypto/subtle"
	"net/http"

	"platecost/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

// RequireCronSecret guards the scheduler-only endpoints. Callers present the
// shared secret in the X-Cron-Secret header.
func RequireCronSecret(cfg config.CronConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader("X-Cron-Secret")
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(cfg.Secret)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"code": http.StatusUnauthorized, "message": "Invalid cron secret"},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
