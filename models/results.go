package models

// Normalized store operation results, mirrored into response bodies the way
// the driver reports them.

// InsertResult acknowledges a single-document insert.
type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId,omitempty"`
}

// UpdateResult reports a single-document update or upsert.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedID    any   `json:"upsertedId,omitempty"`
}

// DeleteResult reports a single-document delete. Deleting a missing id is
// not an error; DeletedCount is simply zero.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
