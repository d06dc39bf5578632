package premiumRepo

import (
	"context"
	"fmt"
	"time"

	"weddingplanner/models"
	"weddingplanner/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUnlockRepo implements UnlockRepository using MongoDB.
type MongoUnlockRepo struct {
	coll *mongo.Collection
}

// NewMongoUnlockRepo creates an UnlockRepository backed by the unlockRecords
// collection and ensures the unique (userEmail, biodataId) index exists.
func NewMongoUnlockRepo(db *mongo.Database) UnlockRepository {
	repo := &MongoUnlockRepo{coll: db.Collection("unlockRecords")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create unlock indexes: %v\n", err)
	}
	return repo
}

// ensureIndexes turns the duplicate-unlock check into a store-level
// constraint instead of a racy check-then-insert.
func (r *MongoUnlockRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "userEmail", Value: 1}, {Key: "biodataId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := r.coll.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoUnlockRepo) Insert(ctx context.Context, rec models.UnlockRecord) (*models.InsertResult, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, rec)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("profile already unlocked: %w", utils.ErrConflict)
		}
		return nil, fmt.Errorf("failed to insert unlock record: %w", err)
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func (r *MongoUnlockRepo) GetByEmail(ctx context.Context, email string) ([]models.UnlockRecord, error) {
	return r.find(ctx, bson.M{"userEmail": email})
}

func (r *MongoUnlockRepo) GetAll(ctx context.Context) ([]models.UnlockRecord, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoUnlockRepo) find(ctx context.Context, filter bson.M) ([]models.UnlockRecord, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve unlock records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.UnlockRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode unlock records: %w", err)
	}
	return records, nil
}

func (r *MongoUnlockRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete unlock record %s: %w", id.Hex(), err)
	}
	return &models.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
