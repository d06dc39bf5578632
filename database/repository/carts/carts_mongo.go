package cartRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"weddingplanner/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CartRepository is the data-access contract for per-email carts.
type CartRepository interface {
	// Upsert writes the cart keyed by email as one atomic operation:
	// created on first write, replaced wholesale afterwards.
	Upsert(ctx context.Context, email string, items []map[string]any) (*models.UpdateResult, error)
	// GetByEmail returns nil when no cart exists for the email.
	GetByEmail(ctx context.Context, email string) (*models.Cart, error)
	// SumItemCounts returns the total number of cart items across all carts.
	SumItemCounts(ctx context.Context) (int64, error)
}

// MongoCartRepo implements CartRepository using MongoDB.
type MongoCartRepo struct {
	coll *mongo.Collection
}

// NewMongoCartRepo creates a CartRepository backed by the cart collection
// and ensures the unique email index exists.
func NewMongoCartRepo(db *mongo.Database) CartRepository {
	repo := &MongoCartRepo{coll: db.Collection("cart")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create cart indexes: %v\n", err)
	}
	return repo
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// ensureIndexes enforces one cart per email at the store level.
func (r *MongoCartRepo) ensureIndexes() error {
	ctx, cancel := newContext(context.Background(), 10*time.Second)
	defer cancel()

	model := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := r.coll.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

func (r *MongoCartRepo) Upsert(ctx context.Context, email string, items []map[string]any) (*models.UpdateResult, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"email":       email,
		"cartItems":   items,
		"lastUpdated": time.Now(),
	}}
	opts := options.Update().SetUpsert(true)
	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email}, update, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert cart for %s: %w", email, err)
	}
	return &models.UpdateResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

func (r *MongoCartRepo) GetByEmail(ctx context.Context, email string) (*models.Cart, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var cart models.Cart
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&cart); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch cart for %s: %w", email, err)
	}
	return &cart, nil
}

// SumItemCounts pushes the cartItems length sum into the store instead of
// loading every cart document into memory.
func (r *MongoCartRepo) SumItemCounts(ctx context.Context) (int64, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": bson.M{"$size": bson.M{"$ifNull": bson.A{"$cartItems", bson.A{}}}}},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to sum cart items: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("failed to decode cart item sum: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
