// Package events announces order changes to other systems.
package events

import (
	"context"
	"errors"
	"log"
	"time"

	"wholesale-delivery/models"
)

type Type string

const (
	OrderCreated        Type = "order.created"
	OrderPaymentUpdated Type = "order.payment_updated"
)

// Event is one order change. DriverID routes it to the driver's feed.
type Event struct {
	Type       Type          `json:"type"`
	OrderID    string        `json:"orderId"`
	DriverID   string        `json:"driverId"`
	Order      *models.Order `json:"order"`
	OccurredAt time.Time     `json:"occurredAt"`
}

// NewOrderEvent builds an event for order as it is now.
func NewOrderEvent(t Type, order *models.Order) Event {
	return Event{
		Type:       t,
		OrderID:    order.ID.Hex(),
		DriverID:   order.Driver.Hex(),
		Order:      order,
		OccurredAt: time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Multi fans an event out to every publisher and joins their errors.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, e Event) error {
	var errList []error
	for _, p := range m {
		if err := p.Publish(ctx, e); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}

// LogPublisher writes events to the standard logger.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, e Event) error {
	log.Printf("event %s order=%s driver=%s", e.Type, e.OrderID, e.DriverID)
	return nil
}
