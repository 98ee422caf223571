package middleware

import (
	"context"  // Context type for the lookup interface
	"net/http" // HTTP status codes

	"github.com/mrseeker53/swaplap-server/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// RoleLookup is the user-store view the admin gate needs
type RoleLookup interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, bool, error)
}

// AdminOnlyMiddleware re-checks the requester's role from the user store
// on each request. The requester is identified by the email the
// verification gate stored in context, never by the request path; tokens
// carry no role claim, so the stored record is the only authority.
func AdminOnlyMiddleware(users RoleLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, exists := c.Get(EmailKey) // Get verified email from context
		// Check if the verification gate ran
		if !exists {
			// If not, abort with a plain-text unauthorized response
			c.String(http.StatusUnauthorized, "unauthorized access")
			c.Abort()
			return
		}
		user, found, err := users.FindByEmail(c.Request.Context(), email.(string)) // Fetch requester from database
		if err != nil {
			// Collaborator failure: log and return a generic 500
			logrus.WithFields(logrus.Fields{"email": email, "error": err}).Error("admin check failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify role"})
			return
		}
		// Check if the requester exists and is an admin
		if !found || user.Role != domain.RoleAdmin {
			// If not admin, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		// If admin, proceed to the next handler
		c.Next()
	}
}
