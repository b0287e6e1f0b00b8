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

// OrderRepository stores orders. Orders are never deleted.
type OrderRepository struct {
	orders *collection[models.Order]
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{orders: newCollection[models.Order](db, OrdersCollection, false)}
}

func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	order.CreatedAt = now()
	order.UpdatedAt = order.CreatedAt
	id, err := r.orders.insert(ctx, order, "Order already exists")
	if err != nil {
		return err
	}
	order.ID = id
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	return r.orders.findOne(ctx, bson.M{"_id": id})
}

func (r *OrderRepository) List(ctx context.Context, f models.OrderFilter, p models.Page) ([]models.Order, int64, error) {
	filter := bson.M{}
	if !f.Driver.IsZero() {
		filter["truck_driver"] = f.Driver
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	return r.orders.list(ctx, filter, p)
}

// UpdateCollected stores a new collected amount only if it does not lower
// the current one and stays within the bill. It returns nil when the
// condition no longer holds.
func (r *OrderRepository) UpdateCollected(ctx context.Context, id primitive.ObjectID, amount models.Money, status models.OrderStatus) (*models.Order, error) {
	filter := bson.M{
		"_id":               id,
		"collected_amount":  bson.M{"$lte": amount},
		"total_bill_amount": bson.M{"$gte": amount},
	}
	update := bson.M{"$set": bson.M{
		"collected_amount": amount,
		"status":           status,
		"updated_at":       now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order models.Order
	err := r.orders.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}
