package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"wholesale-delivery/models"
)

func testOrder() *models.Order {
	return &models.Order{
		ID:              primitive.NewObjectID(),
		Driver:          primitive.NewObjectID(),
		Vendor:          primitive.NewObjectID(),
		TotalBillAmount: models.MustMoney("15"),
		CollectedAmount: models.MustMoney("10"),
		Status:          models.OrderStatusPending,
	}
}

func TestKafkaPublisherSendsJSON(t *testing.T) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	producer := mocks.NewSyncProducer(t, cfg)
	order := testOrder()

	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got map[string]any
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		if got["type"] != string(OrderCreated) || got["orderId"] != order.ID.Hex() {
			return errors.New("unexpected payload")
		}
		return nil
	})

	pub := NewKafkaPublisherFromProducer(producer, "orders")
	require.NoError(t, pub.Publish(context.Background(), NewOrderEvent(OrderCreated, order)))
	require.NoError(t, pub.Close())
}

func TestKafkaPublisherReportsFailure(t *testing.T) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	producer := mocks.NewSyncProducer(t, cfg)
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	pub := NewKafkaPublisherFromProducer(producer, "orders")
	err := pub.Publish(context.Background(), NewOrderEvent(OrderPaymentUpdated, testOrder()))
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, pub.Close())
}

type failing struct{ err error }

func (f failing) Publish(context.Context, Event) error { return f.err }

type counting struct{ n int }

func (c *counting) Publish(context.Context, Event) error { c.n++; return nil }

func TestMultiPublishesToAll(t *testing.T) {
	boom := errors.New("boom")
	c := &counting{}
	m := Multi{failing{boom}, c, LogPublisher{}}

	err := m.Publish(context.Background(), NewOrderEvent(OrderCreated, testOrder()))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, c.n)
}
