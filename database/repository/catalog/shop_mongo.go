package catalogRepo

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
)

// MongoShopRepo implements ShopRepository using MongoDB.
type MongoShopRepo struct {
	coll *mongo.Collection
}

// NewMongoShopRepo creates a ShopRepository backed by the weddingShop
// collection.
func NewMongoShopRepo(db *mongo.Database) ShopRepository {
	return &MongoShopRepo{coll: db.Collection("weddingShop")}
}

func (r *MongoShopRepo) Insert(ctx context.Context, item models.ShopItem) (*models.InsertResult, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to insert shop item: %w", err)
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func (r *MongoShopRepo) GetAll(ctx context.Context) ([]models.ShopItem, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve shop items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.ShopItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode shop items: %w", err)
	}
	return items, nil
}

func (r *MongoShopRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ShopItem, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var item models.ShopItem
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("shop item %s: %w", id.Hex(), utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch shop item %s: %w", id.Hex(), err)
	}
	return &item, nil
}

func (r *MongoShopRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.UpdateResult, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("failed to update shop item %s: %w", id.Hex(), err)
	}
	return &models.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *MongoShopRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete shop item %s: %w", id.Hex(), err)
	}
	return &models.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
