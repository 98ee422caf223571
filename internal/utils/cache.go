package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client

	"go.mongodb.org/mongo-driver/bson" // Raw document type
)

// ListCacheTTL is how long cached document lists stay fresh. Banners and
// categories are read far more often than they change, so a short TTL is
// enough; nothing invalidates these keys explicitly.
const ListCacheTTL = 60 * time.Second

// GetCachedList retrieves a cached document list from Redis.
// The first return reports whether the key existed.
func GetCachedList(ctx context.Context, rdb *redis.Client, key string) (bool, []bson.M, error) {
	val, err := rdb.Get(ctx, key).Result() // Get value from Redis
	if err == redis.Nil {
		return false, nil, nil // Key does not exist
	} else if err != nil {
		return false, nil, err // Other Redis error
	}
	var docs []bson.M
	if err := json.Unmarshal([]byte(val), &docs); err != nil {
		return false, nil, err // Treat a corrupt entry as a miss upstream
	}
	return true, docs, nil
}

// SetCachedList stores a document list in Redis with the list TTL
func SetCachedList(ctx context.Context, rdb *redis.Client, key string, docs []bson.M) error {
	b, err := json.Marshal(docs) // Marshal documents to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return rdb.Set(ctx, key, b, ListCacheTTL).Err() // Set value in Redis with TTL
}
