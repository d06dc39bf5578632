package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UnlockStatusUnlocked is the only status an unlock record ever carries.
const UnlockStatusUnlocked = "unlocked"

// UnlockRecord is proof that a user paid to view a biodata profile's full
// details. At most one record exists per (userEmail, biodataId) pair; the
// store enforces that with a unique compound index.
type UnlockRecord struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserEmail      string             `bson:"userEmail" json:"userEmail"`
	BiodataID      string             `bson:"biodataId" json:"biodataId"`
	BiodataName    string             `bson:"biodataName,omitempty" json:"biodataName,omitempty"`
	BiodataImage   string             `bson:"biodataImage,omitempty" json:"biodataImage,omitempty"`
	BiodataAddress string             `bson:"biodataAddress,omitempty" json:"biodataAddress,omitempty"`
	UnlockDate     time.Time          `bson:"unlockDate" json:"unlockDate"`
	Status         string             `bson:"status" json:"status"`
}

// UnlockRequest is the payload for POST /unlock-premium. The biodata fields
// are a denormalized snapshot taken at unlock time.
type UnlockRequest struct {
	UserEmail      string `json:"userEmail"`
	BiodataID      string `json:"biodataId" validate:"required"`
	BiodataName    string `json:"biodataName"`
	BiodataImage   string `json:"biodataImage"`
	BiodataAddress string `json:"biodataAddress"`
}
