package store

import (
	"go.mongodb.org/mongo-driver/mongo" // MongoDB driver
)

// Stores bundles one store per collection. Built once at startup around
// the shared database handle and passed to route registration.
type Stores struct {
	Users      *Users    // users collection
	Banners    *Docs     // banners collection
	Categories *Docs     // categories collection
	Products   *Products // products collection
	Bookings   *Docs     // bookings collection
}

// New builds the store set over the given database
func New(db *mongo.Database) *Stores {
	return &Stores{
		Users:      NewUsers(db),              // User lookups, inserts, promotion
		Banners:    NewDocs(db, "banners"),    // Home page banners
		Categories: NewDocs(db, "categories"), // Product categories
		Products:   NewProducts(db),           // Seller listings
		Bookings:   NewDocs(db, "bookings"),   // Buyer bookings
	}
}
