package middleware

import (
	"net/http"
	"strings"

	"detailify/utils"

	"github.com/gin-gonic/gin"
)

// OwnerAuthMiddleware guards the dashboard API. It accepts the owner's
// bearer JWT and requires a live Redis session for that token, so logout
// and session expiry revoke access immediately even for unexpired JWTs.
func OwnerAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		email, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		session, err := utils.GetOwnerSession(utils.GetAuthCacheClient(), utils.HashToken(tokenString))
		if err != nil || session == nil || session.Email != email {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired, please log in again"})
			return
		}

		c.Set("ownerEmail", email)
		c.Next()
	}
}
