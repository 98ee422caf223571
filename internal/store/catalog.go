package store

import (
	"context" // Context for database operations

	"go.mongodb.org/mongo-driver/bson"  // BSON documents
	"go.mongodb.org/mongo-driver/mongo" // MongoDB driver
)

// Docs wraps a collection of opaque documents that are only ever listed
// and inserted (banners, categories, bookings).
type Docs struct {
	col *mongo.Collection // Underlying collection handle
}

// NewDocs returns a store over the named collection
func NewDocs(db *mongo.Database, name string) *Docs {
	return &Docs{col: db.Collection(name)}
}

// All returns every document in the collection unchanged
func (s *Docs) All(ctx context.Context) ([]bson.M, error) {
	return findAll(ctx, s.col, bson.M{})
}

// Insert stores the client payload as-is and returns the raw driver result
func (s *Docs) Insert(ctx context.Context, doc bson.M) (*mongo.InsertOneResult, error) {
	return s.col.InsertOne(ctx, doc)
}

// Products wraps the products collection, which additionally supports
// filtering by the categoryId foreign key. No referential integrity is
// enforced; an orphaned categoryId simply matches nothing.
type Products struct {
	Docs // List and insert behave like any other document collection
}

// NewProducts returns a store over the products collection
func NewProducts(db *mongo.Database) *Products {
	return &Products{Docs{col: db.Collection("products")}}
}

// ByCategory returns the products whose categoryId equals id, in
// whatever order the database returns them
func (s *Products) ByCategory(ctx context.Context, id string) ([]bson.M, error) {
	return findAll(ctx, s.col, bson.M{"categoryId": id})
}

// findAll runs a filtered find and decodes every document. It returns an
// empty (non-nil) slice when nothing matches so list responses encode as
// [] rather than null.
func findAll(ctx context.Context, col *mongo.Collection, filter bson.M) ([]bson.M, error) {
	cur, err := col.Find(ctx, filter) // Run the query
	if err != nil {
		return nil, err // Collaborator failure
	}
	docs := []bson.M{}
	if err := cur.All(ctx, &docs); err != nil { // Decode and close the cursor
		return nil, err
	}
	return docs, nil
}
