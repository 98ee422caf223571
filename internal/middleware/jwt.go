package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"github.com/mrseeker53/swaplap-server/internal/utils" // JWT utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// EmailKey is the context key under which the verified claim email is stored
const EmailKey = "email"

// JWTAuthMiddleware is the verification gate applied to protected routes.
// A missing Authorization header is a plain-text 401; any token failure
// (expired, malformed, bad signature) is a JSON 403. On success the
// decoded claim email is stored in the request context.
func JWTAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present
		if authHeader == "" {
			// If not, abort with a plain-text unauthorized response
			c.String(http.StatusUnauthorized, "unauthorized access")
			c.Abort()
			return
		}
		// The scheme segment is ignored; only the second segment is the token
		parts := strings.Split(authHeader, " ")
		tokenStr := ""
		if len(parts) > 1 {
			tokenStr = parts[1] // Extract the token string
		}
		claims, err := utils.ParseJWT(tokenStr, secret) // Parse the JWT token
		if err != nil {
			// If parsing fails, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		c.Set(EmailKey, claims.Email) // Store the verified email in context
		c.Next()                      // Proceed to the next handler
	}
}
