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

// MongoPackageRepo implements PackageRepository using MongoDB.
type MongoPackageRepo struct {
	coll *mongo.Collection
}

// NewMongoPackageRepo creates a PackageRepository backed by the
// servicesPackage collection.
func NewMongoPackageRepo(db *mongo.Database) PackageRepository {
	return &MongoPackageRepo{coll: db.Collection("servicesPackage")}
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

func (r *MongoPackageRepo) Insert(ctx context.Context, pkg models.ServicePackage) (*models.InsertResult, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, pkg)
	if err != nil {
		return nil, fmt.Errorf("failed to insert package: %w", err)
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func (r *MongoPackageRepo) GetAll(ctx context.Context) ([]models.ServicePackage, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve packages: %w", err)
	}
	defer cursor.Close(ctx)

	var pkgs []models.ServicePackage
	if err := cursor.All(ctx, &pkgs); err != nil {
		return nil, fmt.Errorf("failed to decode packages: %w", err)
	}
	return pkgs, nil
}

func (r *MongoPackageRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ServicePackage, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var pkg models.ServicePackage
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&pkg); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("package %s: %w", id.Hex(), utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch package %s: %w", id.Hex(), err)
	}
	return &pkg, nil
}

func (r *MongoPackageRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.UpdateResult, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, fmt.Errorf("failed to update package %s: %w", id.Hex(), err)
	}
	return &models.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *MongoPackageRepo) DecrementStock(ctx context.Context, id primitive.ObjectID, quantity int) (*models.UpdateResult, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	// Single atomic $inc; the inStock guard keeps stock from going negative
	// under concurrent purchases.
	filter := bson.M{"_id": id, "inStock": bson.M{"$gte": quantity}}
	update := bson.M{"$inc": bson.M{"inStock": -quantity}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to decrement stock for %s: %w", id.Hex(), err)
	}
	return &models.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

func (r *MongoPackageRepo) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete package %s: %w", id.Hex(), err)
	}
	return &models.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
