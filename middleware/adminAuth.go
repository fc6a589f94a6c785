package middleware

import (
	"net/http"
	"strings"

	"coachly/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthAdminMiddleware guards admin endpoints. A valid token is a signed,
// unexpired admin JWT whose hash is still present in the auth cache (sign-out
// removes it, revoking the session early).
func JWTAuthAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || subject != "admin" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized admin access"})
			return
		}

		cacheKey := utils.AuthCachePrefix + utils.HashToken(tokenString)
		if err := utils.GetAuthCacheClient().Get(c.Request.Context(), cacheKey).Err(); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or revoked"})
			return
		}

		c.Set("adminToken", tokenString)
		c.Set("isAdmin", true)
		c.Next()
	}
}
