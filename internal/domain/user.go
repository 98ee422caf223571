package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive" // MongoDB ObjectID type
)

// User roles
const (
	RoleBuyer  = "buyer"  // Default marketplace role
	RoleSeller = "seller" // Can list products
	RoleAdmin  = "admin"  // Can promote other users
)

// User is the decoded view of a user document. Only the fields the
// gateway reads are typed; everything else the client stored stays in
// the document untouched.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"` // Document ID
	Email string             `bson:"email" json:"email"`                 // Lookup key
	Role  string             `bson:"role" json:"role"`                   // buyer, seller or admin
}
