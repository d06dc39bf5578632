package premiumRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"weddingplanner/models"
	"weddingplanner/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBiodataRepo implements BiodataRepository using MongoDB.
type MongoBiodataRepo struct {
	coll *mongo.Collection
}

// NewMongoBiodataRepo creates a BiodataRepository backed by the biodata
// collection.
func NewMongoBiodataRepo(db *mongo.Database) BiodataRepository {
	return &MongoBiodataRepo{coll: db.Collection("biodata")}
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoBiodataRepo) Insert(ctx context.Context, doc bson.M) (*models.InsertResult, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to insert biodata: %w", err)
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

// GetAll joins each biodata with its unlock records and projects the match
// count as premiumCount. unlockRecords store biodataId as the string form
// of the ObjectID, so the id is stringified inside the lookup.
func (r *MongoBiodataRepo) GetAll(ctx context.Context) ([]bson.M, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from": "unlockRecords",
			"let":  bson.M{"bid": bson.M{"$toString": "$_id"}},
			"pipeline": bson.A{
				bson.M{"$match": bson.M{"$expr": bson.M{"$eq": bson.A{"$biodataId", "$$bid"}}}},
			},
			"as": "unlocks",
		}}},
		{{Key: "$addFields", Value: bson.M{"premiumCount": bson.M{"$size": "$unlocks"}}}},
		{{Key: "$project", Value: bson.M{"unlocks": 0}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate biodata: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode biodata: %w", err)
	}
	return docs, nil
}

func (r *MongoBiodataRepo) GetByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var doc bson.M
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("biodata %s: %w", id.Hex(), utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch biodata %s: %w", id.Hex(), err)
	}
	return doc, nil
}

func (r *MongoBiodataRepo) Upsert(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.UpdateResult, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	delete(fields, "_id")
	opts := options.Update().SetUpsert(true)
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert biodata %s: %w", id.Hex(), err)
	}
	return &models.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

func (r *MongoBiodataRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete biodata %s: %w", id.Hex(), err)
	}
	return &models.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
