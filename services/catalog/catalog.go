package catalog

import (
	"context"
	"fmt"

	catalogRepo "weddingplanner/database/repository/catalog"
	"weddingplanner/models"
	"weddingplanner/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// CatalogService defines business logic for services packages and the
// wedding shop.
type CatalogService interface {
	CreatePackage(ctx context.Context, pkg models.ServicePackage) (*models.InsertResult, error)
	ListPackages(ctx context.Context) ([]models.ServicePackage, error)
	GetPackage(ctx context.Context, id string) (*models.ServicePackage, error)
	UpdatePackage(ctx context.Context, id string, upd models.ServicePackageUpdate) (*models.UpdateResult, error)
	// DecrementStock removes quantity units from a package's stock as a
	// single atomic store operation.
	DecrementStock(ctx context.Context, id string, quantity int) (*models.UpdateResult, error)
	DeletePackage(ctx context.Context, id string) (*models.DeleteResult, error)

	CreateShopItem(ctx context.Context, item models.ShopItem) (*models.InsertResult, error)
	ListShopItems(ctx context.Context) ([]models.ShopItem, error)
	GetShopItem(ctx context.Context, id string) (*models.ShopItem, error)
	UpdateShopItem(ctx context.Context, id string, upd models.ShopItemUpdate) (*models.UpdateResult, error)
	DeleteShopItem(ctx context.Context, id string) (*models.DeleteResult, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Packages catalogRepo.PackageRepository
	Shop     catalogRepo.ShopRepository
}

func (s *DefaultCatalogService) CreatePackage(ctx context.Context, pkg models.ServicePackage) (*models.InsertResult, error) {
	return s.Packages.Insert(ctx, pkg)
}

func (s *DefaultCatalogService) ListPackages(ctx context.Context) ([]models.ServicePackage, error) {
	return s.Packages.GetAll(ctx)
}

func (s *DefaultCatalogService) GetPackage(ctx context.Context, id string) (*models.ServicePackage, error) {
	oid, err := utils.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.Packages.GetByID(ctx, oid)
}

func (s *DefaultCatalogService) UpdatePackage(ctx context.Context, id string, upd models.ServicePackageUpdate) (*models.UpdateResult, error) {
	oid, err := utils.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	fields := bson.M{
		"name":           upd.Name,
		"nameTwo":        upd.NameTwo,
		"priceOne":       upd.PriceOne,
		"image":          upd.Image,
		"descriptionTwo": upd.DescriptionTwo,
	}
	return s.Packages.UpdateFields(ctx, oid, fields)
}

func (s *DefaultCatalogService) DecrementStock(ctx context.Context, id string, quantity int) (*models.UpdateResult, error) {
	oid, err := utils.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", utils.ErrInvalidInput)
	}
	res, err := s.Packages.DecrementStock(ctx, oid, quantity)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("package %s has insufficient stock: %w", id, utils.ErrConflict)
	}
	return res, nil
}

func (s *DefaultCatalogService) DeletePackage(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, err := utils.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.Packages.Delete(ctx, oid)
}

func (s *DefaultCatalogService) CreateShopItem(ctx context.Context, item models.ShopItem) (*models.InsertResult, error) {
	return s.Shop.Insert(ctx, item)
}

func (s *DefaultCatalogService) ListShopItems(ctx context.Context) ([]models.ShopItem, error) {
	return s.Shop.GetAll(ctx)
}

func (s *DefaultCatalogService) GetShopItem(ctx context.Context, id string) (*models.ShopItem, error) {
	oid, err := utils.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.Shop.GetByID(ctx, oid)
}

// UpdateShopItem coerces the numeric fields before writing, matching the
// loose payloads the storefront sends (numbers or numeric strings).
func (s *DefaultCatalogService) UpdateShopItem(ctx context.Context, id string, upd models.ShopItemUpdate) (*models.UpdateResult, error) {
	oid, err := utils.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	price, err := utils.CoerceFloat(upd.PriceTwo)
	if err != nil {
		return nil, err
	}
	stock, err := utils.CoerceInt(upd.InStock)
	if err != nil {
		return nil, err
	}
	fields := bson.M{
		"name":     upd.Name,
		"priceTwo": price,
		"inStock":  stock,
	}
	return s.Shop.UpdateFields(ctx, oid, fields)
}

func (s *DefaultCatalogService) DeleteShopItem(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, err := utils.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.Shop.Delete(ctx, oid)
}
