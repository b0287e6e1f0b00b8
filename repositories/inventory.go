package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"wholesale-delivery/models"
)

const itemConflict = "Item with this name already exists"

// InventoryRepository stores stocked items and performs stock reservations
type InventoryRepository struct {
	items *collection[models.InventoryItem]
}

func NewInventoryRepository(db *mongo.Database) *InventoryRepository {
	return &InventoryRepository{items: newCollection[models.InventoryItem](db, InventoryCollection, true)}
}

func (r *InventoryRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	if item.Images == nil {
		item.Images = []models.Image{}
	}
	item.IsDeleted = false
	item.CreatedAt = now()
	item.UpdatedAt = item.CreatedAt
	id, err := r.items.insert(ctx, item, itemConflict)
	if err != nil {
		return err
	}
	item.ID = id
	return nil
}

func (r *InventoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.InventoryItem, error) {
	return r.items.findActiveByID(ctx, id)
}

func (r *InventoryRepository) FindByName(ctx context.Context, exclude primitive.ObjectID, name string) (*models.InventoryItem, error) {
	return r.items.findDuplicate(ctx, exclude, bson.M{"name": name})
}

func (r *InventoryRepository) List(ctx context.Context, p models.Page) ([]models.InventoryItem, int64, error) {
	return r.items.listActive(ctx, bson.M{}, p)
}

// Update replaces the editable fields and the image list of an active item.
// The quantity is only written when the input sets it.
func (r *InventoryRepository) Update(ctx context.Context, id primitive.ObjectID, in models.InventoryInput, images []models.Image) (*models.InventoryItem, error) {
	if images == nil {
		images = []models.Image{}
	}
	set := bson.M{
		"name":     in.Name,
		"price":    in.Price,
		"category": in.Category,
		"images":   images,
	}
	if in.SetQuantity {
		set["quantity"] = in.Quantity
	}
	return r.items.updateActive(ctx, id, set, itemConflict)
}

func (r *InventoryRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return r.items.softDeleteByID(ctx, id)
}

func (r *InventoryRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.InventoryItem, error) {
	return r.items.findByIDs(ctx, ids)
}

// Reserve takes qty units from an active item in a single conditional
// update. It reports false when the item is gone or holds fewer units.
func (r *InventoryRepository) Reserve(ctx context.Context, id primitive.ObjectID, qty int) (bool, error) {
	res, err := r.items.coll.UpdateOne(ctx,
		bson.M{"_id": id, "is_deleted": false, "quantity": bson.M{"$gte": qty}},
		bson.M{"$inc": bson.M{"quantity": -qty}, "$set": bson.M{"updated_at": now()}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

// Release gives back units taken by Reserve.
func (r *InventoryRepository) Release(ctx context.Context, id primitive.ObjectID, qty int) error {
	_, err := r.items.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"quantity": qty}, "$set": bson.M{"updated_at": now()}},
	)
	return err
}
