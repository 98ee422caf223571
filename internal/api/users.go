package api

import (
	"net/http" // HTTP status codes

	"github.com/mrseeker53/swaplap-server/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"         // Gin web framework
	"go.mongodb.org/mongo-driver/bson" // BSON documents
)

// ListUsersHandler returns every user document unchanged
func ListUsersHandler(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		docs, err := users.All(c.Request.Context()) // Fetch all users
		if err != nil {
			serverError(c, "users.All", err)
			return
		}
		c.JSON(http.StatusOK, docs) // Return the raw documents
	}
}

// CreateUserHandler inserts the request body as a user document. No
// uniqueness or shape is enforced; the raw driver result goes back to
// the client.
func CreateUserHandler(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var doc bson.M // Opaque client payload
		if err := c.ShouldBindJSON(&doc); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		res, err := users.Insert(c.Request.Context(), doc) // Insert the document
		if err != nil {
			serverError(c, "users.Insert", err)
			return
		}
		c.JSON(http.StatusOK, res) // Return the raw insert result
	}
}

// RoleCheckHandler answers one boolean role-membership question. The
// response key matches the asked role (isBuyer / isSeller / isAdmin);
// an email with no matching user is false, never an error.
func RoleCheckHandler(users UserStore, role, field string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email") // Email from the request path
		user, found, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			serverError(c, "users.FindByEmail", err)
			return
		}
		// Absent user or different role both answer false
		c.JSON(http.StatusOK, gin.H{field: found && user.Role == role})
	}
}

// PromoteAdminHandler upserts the target user's role to admin. The
// requester was already authenticated by the verification gate and
// authorized by the admin gate; the target is identified by the path id
// alone and is created if it does not exist.
func PromoteAdminHandler(users UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id") // Target user id from the request path
		res, err := users.PromoteToAdmin(c.Request.Context(), id)
		if err != nil {
			serverError(c, "users.PromoteToAdmin", err) // Includes malformed ids
			return
		}
		c.JSON(http.StatusOK, res) // Return the raw update result
	}
}

// ListBuyersHandler returns every user with the buyer role
func ListBuyersHandler(users UserStore) gin.HandlerFunc {
	return listByRoleHandler(users, domain.RoleBuyer)
}

// ListSellersHandler returns every user with the seller role
func ListSellersHandler(users UserStore) gin.HandlerFunc {
	return listByRoleHandler(users, domain.RoleSeller)
}

func listByRoleHandler(users UserStore, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		docs, err := users.AllByRole(c.Request.Context(), role) // Fetch users by role
		if err != nil {
			serverError(c, "users.AllByRole", err)
			return
		}
		c.JSON(http.StatusOK, docs) // Return the raw documents
	}
}
