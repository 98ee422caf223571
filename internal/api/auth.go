package api

import (
	"net/http" // HTTP status codes

	"github.com/mrseeker53/swaplap-server/internal/utils" // Utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// AuthResponse is the fixed shape of every token response
type AuthResponse struct {
	Token string `json:"token"` // JWT token, empty when no user matched
}

// TokenHandler issues a bearer token for a known user. The email arrives
// as a query parameter; when no user matches, the response is a 403 with
// an empty token string rather than an error body, which the client
// special-cases.
func TokenHandler(users UserStore, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email") // Email supplied by the client, unvalidated
		// Look up exactly one user with this email
		_, found, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			serverError(c, "users.FindByEmail", err) // Collaborator failure
			return
		}
		// Unknown email: the deliberate empty-token signal
		if !found {
			c.JSON(http.StatusForbidden, AuthResponse{Token: ""})
			return
		}
		// Generate a token carrying only the email, valid for one hour
		token, err := utils.GenerateJWT(email, jwtSecret)
		if err != nil {
			serverError(c, "utils.GenerateJWT", err) // Signing failure
			return
		}
		// Return the token in the response
		c.JSON(http.StatusOK, AuthResponse{Token: token})
	}
}
