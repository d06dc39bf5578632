package reviewRepo

import (
	"context"
	"fmt"
	"time"

	"weddingplanner/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoReviewRepo implements ReviewRepository using MongoDB.
type MongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo creates a ReviewRepository backed by the reviews
// collection.
func NewMongoReviewRepo(db *mongo.Database) ReviewRepository {
	return &MongoReviewRepo{coll: db.Collection("reviews")}
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoReviewRepo) Insert(ctx context.Context, review models.Review) (*models.InsertResult, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("failed to insert review: %w", err)
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func (r *MongoReviewRepo) GetAll(ctx context.Context) ([]models.Review, error) {
	return r.find(ctx, bson.M{})
}

// GetPinned returns only the reviews selected for the homepage.
func (r *MongoReviewRepo) GetPinned(ctx context.Context) ([]models.Review, error) {
	return r.find(ctx, bson.M{"isPinned": true})
}

func (r *MongoReviewRepo) find(ctx context.Context, filter bson.M) ([]models.Review, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}

func (r *MongoReviewRepo) SetPinned(ctx context.Context, id primitive.ObjectID, pinned bool) (*models.UpdateResult, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"isPinned": pinned}})
	if err != nil {
		return nil, fmt.Errorf("failed to pin review %s: %w", id.Hex(), err)
	}
	return &models.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *MongoReviewRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete review %s: %w", id.Hex(), err)
	}
	return &models.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func (r *MongoReviewRepo) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, bson.M{})
}

func (r *MongoReviewRepo) CountByEmail(ctx context.Context, email string) (int64, error) {
	return r.count(ctx, bson.M{"email": email})
}

func (r *MongoReviewRepo) count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	return n, nil
}
