package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wholesale-delivery/models"
)

// AdminRepository stores administrator accounts
type AdminRepository struct {
	admins *collection[models.Admin]
}

func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{admins: newCollection[models.Admin](db, AdminsCollection, false)}
}

// Create inserts the admin together with its pending verification token.
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	admin.CreatedAt = now()
	admin.UpdatedAt = admin.CreatedAt
	id, err := r.admins.insert(ctx, admin, "Email already exists")
	if err != nil {
		return err
	}
	admin.ID = id
	return nil
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return r.admins.findOne(ctx, bson.M{"email": email})
}

// MarkVerified sets is_verified and removes the token, but only while the
// given token is still pending so a token cannot be consumed twice.
func (r *AdminRepository) MarkVerified(ctx context.Context, id primitive.ObjectID, token string) (*models.Admin, error) {
	filter := bson.M{"_id": id, "verify_token": token}
	update := bson.M{
		"$set":   bson.M{"is_verified": true, "updated_at": now()},
		"$unset": bson.M{"verify_token": "", "verify_token_expiry": ""},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var admin models.Admin
	err := r.admins.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
