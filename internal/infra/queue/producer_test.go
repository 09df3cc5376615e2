package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
}

func (f *fakePublisher) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.exchange = exchange
	f.key = key
	f.msg = msg
	return f.err
}

func TestPublishLeadStatusChanged(t *testing.T) {
	pub := &fakePublisher{}
	producer := NewProducer(pub)
	occurred := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

	err := producer.PublishLeadStatusChanged(context.Background(), LeadStatusChangedPayload{
		EventID:        "evt-1",
		UserID:         "agent-1",
		LeadID:         "l1",
		PreviousStatus: "Follow-up",
		Status:         "Converted",
		OccurredAt:     occurred,
	})

	require.NoError(t, err)
	assert.Equal(t, ExchangeName, pub.exchange)
	assert.Equal(t, RoutingKey, pub.key)
	assert.Equal(t, "evt-1", pub.msg.MessageId)
	assert.Equal(t, amqp.Persistent, pub.msg.DeliveryMode)
	assert.Equal(t, occurred, pub.msg.Timestamp)

	var body map[string]any
	require.NoError(t, json.Unmarshal(pub.msg.Body, &body))
	assert.Equal(t, "Converted", body["status"])
	assert.Equal(t, "Follow-up", body["previous_status"])
	assert.Equal(t, "l1", body["lead_id"])
}

func TestPublishLeadStatusChangedError(t *testing.T) {
	producer := NewProducer(&fakePublisher{err: errors.New("channel/connection is not open")})

	err := producer.PublishLeadStatusChanged(context.Background(), LeadStatusChangedPayload{EventID: "evt-1"})

	assert.ErrorContains(t, err, "falha ao publicar no RabbitMQ")
}
