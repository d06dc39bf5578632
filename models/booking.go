package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingStatusPending is the status assigned to every new booking; admins
// move it to other values later.
const BookingStatusPending = "Pending"

// Order records a completed package purchase.
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserEmail string             `bson:"userEmail" json:"userEmail"`
	Items     []map[string]any   `bson:"items,omitempty" json:"items,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Booking is a scheduled service appointment.
type Booking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserEmail   string             `bson:"userEmail" json:"userEmail"`
	ServiceName string             `bson:"serviceName,omitempty" json:"serviceName,omitempty"`
	BookingDate string             `bson:"bookingDate,omitempty" json:"bookingDate,omitempty"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
