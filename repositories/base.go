// Package repositories translates domain operations into MongoDB queries.
package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wholesale-delivery/errs"
	"wholesale-delivery/models"
)

const (
	AdminsCollection    = "admins"
	DriversCollection   = "drivers"
	VendorsCollection   = "vendors"
	InventoryCollection = "inventory"
	OrdersCollection    = "orders"
)

// collection wraps a mongo collection with newest-first paging and, for
// soft-deletable entities, the is_deleted=false predicate on every
// active-record query.
type collection[T any] struct {
	coll       *mongo.Collection
	softDelete bool
}

func newCollection[T any](db *mongo.Database, name string, softDelete bool) *collection[T] {
	return &collection[T]{coll: db.Collection(name), softDelete: softDelete}
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// active copies filter and adds the soft-delete predicate.
func (c *collection[T]) active(filter bson.M) bson.M {
	out := bson.M{}
	for k, v := range filter {
		out[k] = v
	}
	if c.softDelete {
		out["is_deleted"] = false
	}
	return out
}

// findOne returns nil, nil when nothing matches.
func (c *collection[T]) findOne(ctx context.Context, filter bson.M) (*T, error) {
	var doc T
	err := c.coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *collection[T]) findActive(ctx context.Context, filter bson.M) (*T, error) {
	return c.findOne(ctx, c.active(filter))
}

func (c *collection[T]) findActiveByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return c.findActive(ctx, bson.M{"_id": id})
}

// findDuplicate looks for an active document other than exclude whose
// value matches any of the given non-empty fields.
func (c *collection[T]) findDuplicate(ctx context.Context, exclude primitive.ObjectID, fields bson.M) (*T, error) {
	var or []bson.M
	for k, v := range fields {
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		or = append(or, bson.M{k: v})
	}
	if len(or) == 0 {
		return nil, nil
	}
	filter := bson.M{"$or": or}
	if !exclude.IsZero() {
		filter["_id"] = bson.M{"$ne": exclude}
	}
	return c.findActive(ctx, filter)
}

// findByIDs ignores the soft-delete flag: references must keep resolving.
func (c *collection[T]) findByIDs(ctx context.Context, ids []primitive.ObjectID) ([]T, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cursor, err := c.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// list returns one newest-first page plus the pre-pagination count.
func (c *collection[T]) list(ctx context.Context, filter bson.M, p models.Page) ([]T, int64, error) {
	total, err := c.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", c.coll.Name(), err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(p.Limit)
	cursor, err := c.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find %s: %w", c.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", c.coll.Name(), err)
	}
	return docs, total, nil
}

func (c *collection[T]) listActive(ctx context.Context, filter bson.M, p models.Page) ([]T, int64, error) {
	return c.list(ctx, c.active(filter), p)
}

// insert stores doc and returns the generated id. Unique index violations
// come back as Conflict with the given message.
func (c *collection[T]) insert(ctx context.Context, doc any, conflictMsg string) (primitive.ObjectID, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, asConflict(err, conflictMsg)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// updateActive applies set to an active document and returns it as stored
// afterwards, or nil when no active document has that id.
func (c *collection[T]) updateActive(ctx context.Context, id primitive.ObjectID, set bson.M, conflictMsg string) (*T, error) {
	set["updated_at"] = now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc T
	err := c.coll.FindOneAndUpdate(ctx, c.active(bson.M{"_id": id}), bson.M{"$set": set}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, asConflict(err, conflictMsg)
	}
	return &doc, nil
}

// softDeleteByID flips the flag on an active document. It reports false
// when the id is unknown or already deleted.
func (c *collection[T]) softDeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := c.coll.UpdateOne(ctx,
		bson.M{"_id": id, "is_deleted": false},
		bson.M{"$set": bson.M{"is_deleted": true, "updated_at": now()}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func asConflict(err error, msg string) error {
	if mongo.IsDuplicateKeyError(err) {
		return errs.Wrap(errs.Conflict, msg, err)
	}
	return err
}
