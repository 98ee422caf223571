package api

import (
	"net/http" // HTTP status codes

	"github.com/mrseeker53/swaplap-server/internal/utils" // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// ListBannersHandler returns every banner document, served from the
// redis response cache when fresh
func ListBannersHandler(banners DocStore, rdb *redis.Client) gin.HandlerFunc {
	return cachedListHandler(banners, rdb, "cache:banners", "banners.All")
}

// ListCategoriesHandler returns every category document, served from the
// redis response cache when fresh
func ListCategoriesHandler(categories DocStore, rdb *redis.Client) gin.HandlerFunc {
	return cachedListHandler(categories, rdb, "cache:categories", "categories.All")
}

// cachedListHandler lists a collection through the response cache. A
// cache failure falls through to the database; the response shape is
// identical on hit and miss.
func cachedListHandler(docs DocStore, rdb *redis.Client, cacheKey, op string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		// Try the cache first
		if rdb != nil {
			if hit, cached, err := utils.GetCachedList(ctx, rdb, cacheKey); err == nil && hit {
				c.JSON(http.StatusOK, cached) // Serve the cached documents
				return
			}
		}
		list, err := docs.All(ctx) // Fetch all documents
		if err != nil {
			serverError(c, op, err)
			return
		}
		// Cache the list for future requests
		if rdb != nil {
			_ = utils.SetCachedList(ctx, rdb, cacheKey, list)
		}
		c.JSON(http.StatusOK, list) // Return the raw documents
	}
}

// ProductsByCategoryHandler returns the products whose categoryId equals
// the path id. An id matching nothing, including an orphaned one, yields
// an empty list.
func ProductsByCategoryHandler(products ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id") // Category id from the request path
		docs, err := products.ByCategory(c.Request.Context(), id)
		if err != nil {
			serverError(c, "products.ByCategory", err)
			return
		}
		c.JSON(http.StatusOK, docs) // Return the raw documents
	}
}
