package models

import (
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Inventory categories accepted by the store.
const (
	CategoryGroceries             = "Groceries"
	CategoryConstructionMaterials = "Construction Materials"
	CategoryPlumbing              = "Plumbing"
	CategoryTools                 = "Tools"
	CategorySafetyEquipment       = "Safety Equipment"
	CategoryBeverages             = "Beverages"
	CategoryStationery            = "Stationery"
	CategoryCleaningSupplies      = "Cleaning Supplies"
	CategoryElectronics           = "Electronics"
	CategoryFurniture             = "Furniture"
	CategoryPackagingMaterials    = "Packaging Materials"
)

var Categories = []string{
	CategoryGroceries,
	CategoryConstructionMaterials,
	CategoryPlumbing,
	CategoryTools,
	CategorySafetyEquipment,
	CategoryBeverages,
	CategoryStationery,
	CategoryCleaningSupplies,
	CategoryElectronics,
	CategoryFurniture,
	CategoryPackagingMaterials,
}

func IsValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// MaxItemImages is the number of images one upload may carry.
const MaxItemImages = 3

// Image points at a stored product picture
type Image struct {
	URL  string `bson:"image_url" json:"imageUrl"`
	Name string `bson:"name" json:"name"`
	Key  string `bson:"key,omitempty" json:"key,omitempty"`
}

// InventoryItem represents a stocked product
type InventoryItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Price     Money              `bson:"price" json:"price"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	Category  string             `bson:"category" json:"category"`
	Images    []Image            `bson:"images" json:"images"`
	IsDeleted bool               `bson:"is_deleted" json:"isDeleted"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

// InventoryInput is the decoded multipart form of add-item and edit-item.
// KeepImages is only read on edit. An edit changes the stock level only
// when SetQuantity is true, so units reserved by orders placed since the
// form was loaded are not overwritten.
type InventoryInput struct {
	Name        string
	Price       Money
	Quantity    int
	SetQuantity bool
	Category    string
	KeepImages  []Image
}

// ImageUpload is one uploaded file handed to the image store.
type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}
