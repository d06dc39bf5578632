package catalog

import (
	"context"
	"testing"

	"weddingplanner/models"
	"weddingplanner/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockPackageRepository struct {
	decrementFunc func(ctx context.Context, id primitive.ObjectID, quantity int) (*models.UpdateResult, error)
	updateFunc    func(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.UpdateResult, error)
	getByIDFunc   func(ctx context.Context, id primitive.ObjectID) (*models.ServicePackage, error)
	calls         int
}

func (m *mockPackageRepository) Insert(ctx context.Context, pkg models.ServicePackage) (*models.InsertResult, error) {
	m.calls++
	return &models.InsertResult{Acknowledged: true, InsertedID: primitive.NewObjectID()}, nil
}

func (m *mockPackageRepository) GetAll(ctx context.Context) ([]models.ServicePackage, error) {
	m.calls++
	return nil, nil
}

func (m *mockPackageRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ServicePackage, error) {
	m.calls++
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return &models.ServicePackage{ID: id}, nil
}

func (m *mockPackageRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.UpdateResult, error) {
	m.calls++
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, fields)
	}
	return &models.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *mockPackageRepository) DecrementStock(ctx context.Context, id primitive.ObjectID, quantity int) (*models.UpdateResult, error) {
	m.calls++
	if m.decrementFunc != nil {
		return m.decrementFunc(ctx, id, quantity)
	}
	return &models.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *mockPackageRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	m.calls++
	return &models.DeleteResult{DeletedCount: 1}, nil
}

type mockShopRepository struct {
	updateFunc func(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.UpdateResult, error)
}

func (m *mockShopRepository) Insert(ctx context.Context, item models.ShopItem) (*models.InsertResult, error) {
	return &models.InsertResult{Acknowledged: true, InsertedID: primitive.NewObjectID()}, nil
}

func (m *mockShopRepository) GetAll(ctx context.Context) ([]models.ShopItem, error) {
	return nil, nil
}

func (m *mockShopRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ShopItem, error) {
	return &models.ShopItem{ID: id}, nil
}

func (m *mockShopRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.UpdateResult, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, fields)
	}
	return &models.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *mockShopRepository) Delete(ctx context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	return &models.DeleteResult{DeletedCount: 1}, nil
}

func TestDecrementStock_InvalidIDShortCircuits(t *testing.T) {
	repo := &mockPackageRepository{}
	svc := &DefaultCatalogService{Packages: repo, Shop: &mockShopRepository{}}

	_, err := svc.DecrementStock(context.Background(), "undefined", 1)

	assert.ErrorIs(t, err, utils.ErrInvalidID)
	assert.Zero(t, repo.calls, "invalid id must never reach the store")
}

func TestDecrementStock_RejectsNonPositiveQuantity(t *testing.T) {
	repo := &mockPackageRepository{}
	svc := &DefaultCatalogService{Packages: repo, Shop: &mockShopRepository{}}

	_, err := svc.DecrementStock(context.Background(), primitive.NewObjectID().Hex(), 0)

	assert.ErrorIs(t, err, utils.ErrInvalidInput)
	assert.Zero(t, repo.calls)
}

func TestDecrementStock_InsufficientStockIsConflict(t *testing.T) {
	repo := &mockPackageRepository{
		decrementFunc: func(ctx context.Context, id primitive.ObjectID, quantity int) (*models.UpdateResult, error) {
			return &models.UpdateResult{MatchedCount: 0, ModifiedCount: 0}, nil
		},
	}
	svc := &DefaultCatalogService{Packages: repo, Shop: &mockShopRepository{}}

	_, err := svc.DecrementStock(context.Background(), primitive.NewObjectID().Hex(), 5)

	assert.ErrorIs(t, err, utils.ErrConflict)
}

func TestDecrementStock_PassesQuantityThrough(t *testing.T) {
	var gotQty int
	repo := &mockPackageRepository{
		decrementFunc: func(ctx context.Context, id primitive.ObjectID, quantity int) (*models.UpdateResult, error) {
			gotQty = quantity
			return &models.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		},
	}
	svc := &DefaultCatalogService{Packages: repo, Shop: &mockShopRepository{}}

	res, err := svc.DecrementStock(context.Background(), primitive.NewObjectID().Hex(), 3)

	require.NoError(t, err)
	assert.Equal(t, 3, gotQty)
	assert.Equal(t, int64(1), res.ModifiedCount)
}

func TestUpdateShopItem_CoercesNumericStrings(t *testing.T) {
	var gotFields bson.M
	shop := &mockShopRepository{
		updateFunc: func(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.UpdateResult, error) {
			gotFields = fields
			return &models.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
		},
	}
	svc := &DefaultCatalogService{Packages: &mockPackageRepository{}, Shop: shop}

	_, err := svc.UpdateShopItem(context.Background(), primitive.NewObjectID().Hex(), models.ShopItemUpdate{
		Name:     "Veil",
		PriceTwo: "49.50",
		InStock:  "12",
	})

	require.NoError(t, err)
	assert.Equal(t, 49.50, gotFields["priceTwo"])
	assert.Equal(t, 12, gotFields["inStock"])
}

func TestUpdateShopItem_RejectsNonNumericPrice(t *testing.T) {
	svc := &DefaultCatalogService{Packages: &mockPackageRepository{}, Shop: &mockShopRepository{}}

	_, err := svc.UpdateShopItem(context.Background(), primitive.NewObjectID().Hex(), models.ShopItemUpdate{
		PriceTwo: "expensive",
		InStock:  1,
	})

	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestGetPackage_NotFoundPassesThrough(t *testing.T) {
	repo := &mockPackageRepository{
		getByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.ServicePackage, error) {
			return nil, utils.ErrNotFound
		},
	}
	svc := &DefaultCatalogService{Packages: repo, Shop: &mockShopRepository{}}

	_, err := svc.GetPackage(context.Background(), primitive.NewObjectID().Hex())

	assert.ErrorIs(t, err, utils.ErrNotFound)
}
