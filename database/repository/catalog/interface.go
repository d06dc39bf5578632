package catalogRepo

import (
	"context"

	"weddingplanner/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PackageRepository is the data-access contract for services packages.
type PackageRepository interface {
	Insert(ctx context.Context, pkg models.ServicePackage) (*models.InsertResult, error)
	GetAll(ctx context.Context) ([]models.ServicePackage, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.ServicePackage, error)
	// UpdateFields applies a field-level merge; fields not named in the
	// update stay untouched.
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.UpdateResult, error)
	// DecrementStock atomically decrements inStock by quantity. The filter
	// requires inStock >= quantity, so a matched count of zero means the
	// package is missing or out of stock.
	DecrementStock(ctx context.Context, id primitive.ObjectID, quantity int) (*models.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
}

// ShopRepository is the data-access contract for wedding shop items.
type ShopRepository interface {
	Insert(ctx context.Context, item models.ShopItem) (*models.InsertResult, error)
	GetAll(ctx context.Context) ([]models.ShopItem, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.ShopItem, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error)
}
