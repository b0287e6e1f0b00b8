package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// uniqueActive is a unique index that only covers non-deleted documents,
// so a soft-deleted record frees its values for reuse.
func uniqueActive(field string) mongo.IndexModel {
	return mongo.IndexModel{
		Keys: bson.D{{Key: field, Value: 1}},
		Options: options.Index().
			SetName(field + "_active_unique").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"is_deleted": false}),
	}
}

func newestFirst() mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: "created_at", Value: -1}},
		Options: options.Index().SetName("created_at_desc"),
	}
}

// EnsureIndexes creates the indexes the repositories rely on. It is safe to
// call on every start.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	plan := map[string][]mongo.IndexModel{
		AdminsCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName("email_unique").SetUnique(true)},
		},
		DriversCollection: {
			uniqueActive("phone"),
			uniqueActive("driving_license"),
			newestFirst(),
		},
		VendorsCollection: {
			uniqueActive("name"),
			uniqueActive("email"),
			uniqueActive("phone"),
			newestFirst(),
		},
		InventoryCollection: {
			uniqueActive("name"),
			newestFirst(),
		},
		OrdersCollection: {
			newestFirst(),
			{Keys: bson.D{{Key: "truck_driver", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("driver_created_at")},
		},
	}

	for name, models := range plan {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}
