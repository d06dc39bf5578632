package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cart is the single per-email cart document. It is created on first write
// and replaced wholesale on every subsequent write.
type Cart struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	CartItems   []map[string]any   `bson:"cartItems" json:"cartItems"`
	LastUpdated time.Time          `bson:"lastUpdated" json:"lastUpdated"`
}

// CartRequest is the upsert payload for POST /cart.
type CartRequest struct {
	Email     string           `json:"email" validate:"required,email"`
	CartItems []map[string]any `json:"cartItems"`
}
