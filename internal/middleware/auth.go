package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sandipmavi/Backend-yt/internal/auth"
)

const (
	// IdentityContextKey is the gin context key holding the resolved claims.
	IdentityContextKey = "identity"
)

// Auth validates the bearer token on protected routes and attaches the
// resolved identity to the request context. The token is carried raw in the
// Authorization header, without a "Bearer " prefix.
func Auth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Token Unauthorized"})
			c.Abort()
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set(IdentityContextKey, claims)
		c.Next()
	}
}

// Identity retrieves the claims attached by Auth.
func Identity(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(IdentityContextKey)
	if !exists {
		return nil, false
	}

	claims, ok := value.(*auth.Claims)
	return claims, ok
}
