package repositories

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"wholesale-delivery/models"
)

const driverConflict = "Driver with this phone or driving license already exists"

// DriverRepository stores truck drivers
type DriverRepository struct {
	drivers *collection[models.Driver]
}

func NewDriverRepository(db *mongo.Database) *DriverRepository {
	return &DriverRepository{drivers: newCollection[models.Driver](db, DriversCollection, true)}
}

func (r *DriverRepository) Create(ctx context.Context, driver *models.Driver) error {
	driver.IsDeleted = false
	driver.CreatedAt = now()
	driver.UpdatedAt = driver.CreatedAt
	id, err := r.drivers.insert(ctx, driver, driverConflict)
	if err != nil {
		return err
	}
	driver.ID = id
	return nil
}

func (r *DriverRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Driver, error) {
	return r.drivers.findActiveByID(ctx, id)
}

// FindByPhone returns the active driver registered with phone.
func (r *DriverRepository) FindByPhone(ctx context.Context, phone string) (*models.Driver, error) {
	return r.drivers.findActive(ctx, bson.M{"phone": phone})
}

// FindDuplicate returns an active driver other than exclude that already
// holds one of the non-empty values.
func (r *DriverRepository) FindDuplicate(ctx context.Context, exclude primitive.ObjectID, name, phone, license string) (*models.Driver, error) {
	return r.drivers.findDuplicate(ctx, exclude, bson.M{
		"name":            name,
		"phone":           phone,
		"driving_license": license,
	})
}

// List pages through active drivers. A non-empty search matches name or
// address case-insensitively.
func (r *DriverRepository) List(ctx context.Context, search string, p models.Page) ([]models.Driver, int64, error) {
	filter := bson.M{}
	if search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		filter["$or"] = []bson.M{{"name": pattern}, {"address": pattern}}
	}
	return r.drivers.listActive(ctx, filter, p)
}

func (r *DriverRepository) Update(ctx context.Context, id primitive.ObjectID, u models.DriverUpdate) (*models.Driver, error) {
	set := bson.M{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Address != nil {
		set["address"] = *u.Address
	}
	if u.Phone != nil {
		set["phone"] = *u.Phone
	}
	if u.DrivingLicense != nil {
		set["driving_license"] = *u.DrivingLicense
	}
	return r.drivers.updateActive(ctx, id, set, driverConflict)
}

func (r *DriverRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return r.drivers.softDeleteByID(ctx, id)
}

// FindByIDs resolves references, deleted drivers included.
func (r *DriverRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Driver, error) {
	return r.drivers.findByIDs(ctx, ids)
}
