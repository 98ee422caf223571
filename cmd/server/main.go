package main

import (
	"context" // Context for startup connections
	"log"     // log package is needed for logging
	"time"    // Startup timeout

	"github.com/mrseeker53/swaplap-server/internal/api"    // Custom package for API handlers
	"github.com/mrseeker53/swaplap-server/internal/config" // Custom package for configuration
	"github.com/mrseeker53/swaplap-server/internal/db"     // Custom package for the database client
	"github.com/mrseeker53/swaplap-server/internal/store"  // Custom package for collection stores

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to MongoDB; the client is shared by every request
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := db.Connect(ctx, cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to MongoDB: %v", err) // Fatal error if DB connection fails
	}
	stores := store.New(client.Database(cfg.DBName)) // Build one store per collection

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Build the routing table and attach it with per-route gates
	routes := api.Routes(api.Stores{
		Users:      stores.Users,      // User lookups, inserts, promotion
		Banners:    stores.Banners,    // Home page banners
		Categories: stores.Categories, // Product categories
		Products:   stores.Products,   // Seller listings
		Bookings:   stores.Bookings,   // Buyer bookings
	}, redisClient, cfg.JWTSecret)
	api.Register(r, routes, stores.Users, cfg.JWTSecret)

	log.Println("Swaplap server is running on port " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                                        // Start the server on port cfg.AppPort
}
