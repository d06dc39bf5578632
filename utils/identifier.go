package utils

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseObjectID validates a user-supplied identifier and converts it to an
// ObjectID. An id is valid only when it is present, not the literal string
// "undefined", and is exactly 24 hex characters. Invalid input must never
// reach the store layer, so every failure maps to ErrInvalidID.
func ParseObjectID(id string) (primitive.ObjectID, error) {
	if id == "" || id == "undefined" || len(id) != 24 {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}
