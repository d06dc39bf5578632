package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Review is client feedback shown on the homepage when pinned.
type Review struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	Rating   int                `bson:"rating,omitempty" json:"rating,omitempty"`
	Comment  string             `bson:"comment,omitempty" json:"comment,omitempty"`
	IsPinned bool               `bson:"isPinned" json:"isPinned"`
}
