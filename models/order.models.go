package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusCompleted OrderStatus = "Completed"
)

// StatusFor is Completed exactly when the whole bill has been collected.
func StatusFor(collected, total Money) OrderStatus {
	if collected.Decimal.Equal(total.Decimal) {
		return OrderStatusCompleted
	}
	return OrderStatusPending
}

// LineItem is one product and quantity in an order
type LineItem struct {
	Product  primitive.ObjectID `bson:"product" json:"product"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

// Order represents a bill created by a driver for a vendor
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Products        []LineItem         `bson:"products" json:"products"`
	Driver          primitive.ObjectID `bson:"truck_driver" json:"truckDriver"`
	Vendor          primitive.ObjectID `bson:"vendor" json:"vendor"`
	TotalBillAmount Money              `bson:"total_bill_amount" json:"totalBillAmount"`
	CollectedAmount Money              `bson:"collected_amount" json:"collectedAmount"`
	Status          OrderStatus        `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updatedAt"`
}

// LineItemDetail is a line item with its product resolved. Product is nil
// when the referenced document no longer exists.
type LineItemDetail struct {
	Product  *InventoryItem `json:"product"`
	Quantity int            `json:"quantity"`
}

// OrderDetail is an order with vendor, driver and products resolved
type OrderDetail struct {
	ID              primitive.ObjectID `json:"id"`
	Products        []LineItemDetail   `json:"products"`
	Driver          *Driver            `json:"truckDriver"`
	Vendor          *Vendor            `json:"vendor"`
	TotalBillAmount Money              `json:"totalBillAmount"`
	CollectedAmount Money              `json:"collectedAmount"`
	Status          OrderStatus        `json:"status"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// LineItemInput is one requested product in POST /order/create-order
type LineItemInput struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// OrderInput is the body of POST /order/create-order. A zero
// TotalBillAmount means "use the computed bill".
type OrderInput struct {
	Vendor          string          `json:"vendor"`
	Driver          string          `json:"truckDriver"`
	Products        []LineItemInput `json:"products"`
	TotalBillAmount Money           `json:"totalBillAmount"`
	CollectedAmount Money           `json:"collectedAmount"`
}

// PaymentUpdate is the body of PATCH /order/{id}/update-payment
type PaymentUpdate struct {
	CollectedAmount *Money `json:"collectedAmount"`
}

// OrderFilter narrows the order listing.
type OrderFilter struct {
	Driver primitive.ObjectID
	Status OrderStatus
}
