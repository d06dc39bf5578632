package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Roles recognized by the dashboard and the admin endpoints.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is an account profile. Email is unique; a second registration with
// the same email never overwrites the first.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"email" json:"email"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role  string             `bson:"role" json:"role"`
}
