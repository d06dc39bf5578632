package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ServicePackage is a bookable wedding services package.
type ServicePackage struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name           string             `bson:"name" json:"name"`
	NameTwo        string             `bson:"nameTwo,omitempty" json:"nameTwo,omitempty"`
	PriceOne       float64            `bson:"priceOne,omitempty" json:"priceOne,omitempty"`
	Image          string             `bson:"image,omitempty" json:"image,omitempty"`
	DescriptionTwo string             `bson:"descriptionTwo,omitempty" json:"descriptionTwo,omitempty"`
	InStock        int                `bson:"inStock" json:"inStock"`
}

// ServicePackageUpdate carries the mutable fields of a package. Only the
// named fields are written; everything else on the document stays untouched.
type ServicePackageUpdate struct {
	Name           string  `json:"name"`
	NameTwo        string  `json:"nameTwo"`
	PriceOne       float64 `json:"priceOne"`
	Image          string  `json:"image"`
	DescriptionTwo string  `json:"descriptionTwo"`
}

// ShopItem is a product in the wedding shop catalog.
type ShopItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	PriceTwo float64            `bson:"priceTwo" json:"priceTwo"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
	InStock  int                `bson:"inStock" json:"inStock"`
}

// ShopItemUpdate carries the mutable fields of a shop item. PriceTwo and
// InStock arrive as either numbers or strings and are coerced before the
// write.
type ShopItemUpdate struct {
	Name     string `json:"name"`
	PriceTwo any    `json:"priceTwo"`
	InStock  any    `json:"inStock"`
}
