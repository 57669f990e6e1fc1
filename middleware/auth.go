package middleware

import (
	"net/http"
	"strings"

	"bookmyservice/models"
	"bookmyservice/utils"

	"github.com/gin-gonic/gin"
)

// identityKey is the gin context key the auth middleware stores the
// caller identity under.
const identityKey = "identity"

// AuthMiddleware validates the Bearer token and checks its hash against
// the auth cache, so revoked tokens die even before their expiry.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		identity, err := utils.IdentityFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		cacheKey := utils.AuthCachePrefix + identity.ID
		storedHash, err := utils.GetAuthCacheClient().Get(c.Request.Context(), cacheKey).Result()
		if err != nil || storedHash != utils.HashToken(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked or expired"})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// CallerIdentity extracts the identity set by AuthMiddleware. The bool is
// false on routes that skipped authentication.
func CallerIdentity(c *gin.Context) (models.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return models.Identity{}, false
	}
	identity, ok := v.(models.Identity)
	return identity, ok
}
