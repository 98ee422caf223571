package api

import (
	"context"  // Context type for store interfaces
	"net/http" // HTTP status codes

	"github.com/mrseeker53/swaplap-server/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"          // Gin web framework
	"github.com/sirupsen/logrus"        // Logging library
	"go.mongodb.org/mongo-driver/bson"  // BSON documents
	"go.mongodb.org/mongo-driver/mongo" // Raw driver result types
)

// UserStore is the user-collection view the handlers need
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, bool, error)
	All(ctx context.Context) ([]bson.M, error)
	AllByRole(ctx context.Context, role string) ([]bson.M, error)
	Insert(ctx context.Context, doc bson.M) (*mongo.InsertOneResult, error)
	PromoteToAdmin(ctx context.Context, id string) (*mongo.UpdateResult, error)
}

// DocStore is the view over a collection of opaque documents that are
// only ever listed and inserted
type DocStore interface {
	All(ctx context.Context) ([]bson.M, error)
	Insert(ctx context.Context, doc bson.M) (*mongo.InsertOneResult, error)
}

// ProductStore additionally filters by the categoryId foreign key
type ProductStore interface {
	DocStore
	ByCategory(ctx context.Context, id string) ([]bson.M, error)
}

// serverError logs a collaborator or signing failure and answers with a generic 500,
// so the client never sees a hung connection
func serverError(c *gin.Context, op string, err error) {
	logrus.WithFields(logrus.Fields{
		"op":    op,           // Failed operation
		"path":  c.FullPath(), // Request route
		"error": err,          // Underlying failure
	}).Error("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
