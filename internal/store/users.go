package store

import (
	"context" // Context for database operations

	"github.com/mrseeker53/swaplap-server/internal/domain" // Importing domain models

	"go.mongodb.org/mongo-driver/bson"           // BSON documents
	"go.mongodb.org/mongo-driver/bson/primitive" // ObjectID parsing
	"go.mongodb.org/mongo-driver/mongo"          // MongoDB driver
	"go.mongodb.org/mongo-driver/mongo/options"  // Update options
)

// Users wraps the users collection
type Users struct {
	col *mongo.Collection // Underlying collection handle
}

// NewUsers returns a store over the users collection
func NewUsers(db *mongo.Database) *Users {
	return &Users{col: db.Collection("users")}
}

// FindByEmail looks up exactly one user by email. The second return
// reports whether a matching document exists, so callers never have to
// treat absence as an error.
func (s *Users) FindByEmail(ctx context.Context, email string) (*domain.User, bool, error) {
	var u domain.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&u) // Query user by email
	if err == mongo.ErrNoDocuments {
		return nil, false, nil // No matching user
	}
	if err != nil {
		return nil, false, err // Collaborator failure
	}
	return &u, true, nil
}

// All returns every user document unchanged
func (s *Users) All(ctx context.Context) ([]bson.M, error) {
	return findAll(ctx, s.col, bson.M{})
}

// AllByRole returns every user document whose role field equals role
func (s *Users) AllByRole(ctx context.Context, role string) ([]bson.M, error) {
	return findAll(ctx, s.col, bson.M{"role": role})
}

// Insert stores the client payload as-is and returns the raw driver result
func (s *Users) Insert(ctx context.Context, doc bson.M) (*mongo.InsertOneResult, error) {
	return s.col.InsertOne(ctx, doc)
}

// PromoteToAdmin upserts the target user's role to admin. The target is
// created if it does not exist; repeating the call is idempotent.
func (s *Users) PromoteToAdmin(ctx context.Context, id string) (*mongo.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id) // Parse the path id as an ObjectID
	if err != nil {
		return nil, err // Malformed id surfaces as a collaborator failure
	}
	update := bson.M{"$set": bson.M{"role": domain.RoleAdmin}} // Set role to admin
	opts := options.Update().SetUpsert(true)                   // Create the record if absent
	return s.col.UpdateOne(ctx, bson.M{"_id": oid}, update, opts)
}
