package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin"         // Gin web framework
	"go.mongodb.org/mongo-driver/bson" // BSON documents
)

// ListBookingsHandler returns every booking document unchanged
func ListBookingsHandler(bookings DocStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		docs, err := bookings.All(c.Request.Context()) // Fetch all bookings
		if err != nil {
			serverError(c, "bookings.All", err)
			return
		}
		c.JSON(http.StatusOK, docs) // Return the raw documents
	}
}

// CreateBookingHandler inserts the request body as a booking document
func CreateBookingHandler(bookings DocStore) gin.HandlerFunc {
	return createDocHandler(bookings, "bookings.Insert")
}

// ListMyProductsHandler returns every product document unchanged
func ListMyProductsHandler(products ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		docs, err := products.All(c.Request.Context()) // Fetch all products
		if err != nil {
			serverError(c, "products.All", err)
			return
		}
		c.JSON(http.StatusOK, docs) // Return the raw documents
	}
}

// CreateProductHandler inserts the request body as a product document
func CreateProductHandler(products ProductStore) gin.HandlerFunc {
	return createDocHandler(products, "products.Insert")
}

// createDocHandler inserts an opaque client payload and returns the raw
// driver result
func createDocHandler(docs DocStore, op string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var doc bson.M // Opaque client payload
		if err := c.ShouldBindJSON(&doc); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		res, err := docs.Insert(c.Request.Context(), doc) // Insert the document
		if err != nil {
			serverError(c, op, err)
			return
		}
		c.JSON(http.StatusOK, res) // Return the raw insert result
	}
}
