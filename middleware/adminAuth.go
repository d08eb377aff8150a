package middleware

import (
	"crypto/subtle"
	"net/http"

	"detailify/config"

	"github.com/gin-gonic/gin"
)

// AdminKeyHeader carries the admin key on destructive routes. It is a
// separate header because those routes also require the owner session
// bearer token in Authorization.
const AdminKeyHeader = "X-Admin-Key"

// AdminKeyMiddleware guards irreversible operations (Drive deletes)
// behind the static admin key, so a leaked session token alone cannot
// destroy files.
func AdminKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(AdminKeyHeader)
		want := config.AppConfig.AdminAPIKey

		if want == "" || subtle.ConstantTimeCompare([]byte(key), []byte(want)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
