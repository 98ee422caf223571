package db

import (
	"context" // Context for connect and ping

	"github.com/mrseeker53/swaplap-server/internal/config" // App configuration

	"go.mongodb.org/mongo-driver/mongo"          // MongoDB driver
	"go.mongodb.org/mongo-driver/mongo/options"  // Client options
	"go.mongodb.org/mongo-driver/mongo/readpref" // Read preference for ping
)

// URI builds the Atlas connection string from the configured credentials
func URI(cfg *config.Config) string {
	return "mongodb+srv://" + cfg.DBUser + ":" + cfg.DBPassword + "@" + cfg.DBHost + "/?retryWrites=true&w=majority"
}

// Connect opens the shared MongoDB client and verifies the connection.
// The client is long-lived and reused by every request; the driver
// manages its own connection pool.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1) // Stable API version
	opts := options.Client().ApplyURI(URI(cfg)).SetServerAPIOptions(serverAPI)
	client, err := mongo.Connect(ctx, opts) // Connect to the cluster
	if err != nil {
		return nil, err // Return error if connection fails
	}
	// Ping the primary to fail fast on bad credentials or host
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	return client, nil
}
