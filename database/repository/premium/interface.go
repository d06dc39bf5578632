package premiumRepo

import (
	"context"

	"weddingplanner/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BiodataRepository is the data-access contract for matrimonial profiles.
// Biodata documents carry arbitrary profile fields, so they move through
// this layer as raw documents rather than a fixed struct.
type BiodataRepository interface {
	Insert(ctx context.Context, doc bson.M) (*models.InsertResult, error)
	// GetAll returns every biodata with a read-time premiumCount joined in
	// from the unlock records. The count is never stored.
	GetAll(ctx context.Context) ([]bson.M, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	// Upsert replaces the mutable fields by id, inserting when absent.
	Upsert(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
}

// UnlockRepository is the data-access contract for unlock records.
type UnlockRepository interface {
	// Insert persists an unlock. The unique (userEmail, biodataId) index
	// makes a duplicate unlock surface as ErrConflict.
	Insert(ctx context.Context, rec models.UnlockRecord) (*models.InsertResult, error)
	GetByEmail(ctx context.Context, email string) ([]models.UnlockRecord, error)
	GetAll(ctx context.Context) ([]models.UnlockRecord, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
}
