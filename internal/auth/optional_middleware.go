package auth

import (
	"github.com/gin-gonic/gin"
)

// OptionalAuthMiddleware stores the authenticated user if a valid credential is present,
// but does not fail if the credential is missing or invalid.
func OptionalAuthMiddleware(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := BearerToken(c); token != "" {
			if user, err := resolver.Resolve(c.Request.Context(), token); err == nil {
				c.Set(CurrentUserKey, user)
			}
		}
		c.Next()
	}
}
