package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"wholesale-delivery/models"
)

const vendorConflict = "Vendor with this name, email or phone already exists"

// VendorRepository stores vendors
type VendorRepository struct {
	vendors *collection[models.Vendor]
}

func NewVendorRepository(db *mongo.Database) *VendorRepository {
	return &VendorRepository{vendors: newCollection[models.Vendor](db, VendorsCollection, true)}
}

func (r *VendorRepository) Create(ctx context.Context, vendor *models.Vendor) error {
	vendor.IsDeleted = false
	vendor.CreatedAt = now()
	vendor.UpdatedAt = vendor.CreatedAt
	id, err := r.vendors.insert(ctx, vendor, vendorConflict)
	if err != nil {
		return err
	}
	vendor.ID = id
	return nil
}

func (r *VendorRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Vendor, error) {
	return r.vendors.findActiveByID(ctx, id)
}

func (r *VendorRepository) FindDuplicate(ctx context.Context, exclude primitive.ObjectID, name, email, phone string) (*models.Vendor, error) {
	return r.vendors.findDuplicate(ctx, exclude, bson.M{
		"name":  name,
		"email": email,
		"phone": phone,
	})
}

func (r *VendorRepository) List(ctx context.Context, p models.Page) ([]models.Vendor, int64, error) {
	return r.vendors.listActive(ctx, bson.M{}, p)
}

func (r *VendorRepository) Update(ctx context.Context, id primitive.ObjectID, u models.VendorUpdate) (*models.Vendor, error) {
	set := bson.M{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Email != nil {
		set["email"] = *u.Email
	}
	if u.Phone != nil {
		set["phone"] = *u.Phone
	}
	if u.Address != nil {
		set["address"] = *u.Address
	}
	return r.vendors.updateActive(ctx, id, set, vendorConflict)
}

func (r *VendorRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return r.vendors.softDeleteByID(ctx, id)
}

func (r *VendorRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Vendor, error) {
	return r.vendors.findByIDs(ctx, ids)
}
