package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockHandler struct {
	mock.Mock
}

func (m *mockHandler) Execute(ctx context.Context, payload LeadStatusChangedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

type fakeConsumer struct {
	deliveries chan amqp.Delivery
}

func (f *fakeConsumer) Consume(string, string, bool, bool, bool, bool, amqp.Table) (<-chan amqp.Delivery, error) {
	return f.deliveries, nil
}

type fakeAcknowledger struct {
	acked  []uint64
	nacked []uint64
	done   chan struct{}
}

func (f *fakeAcknowledger) Ack(tag uint64, _ bool) error {
	f.acked = append(f.acked, tag)
	f.done <- struct{}{}
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, _, _ bool) error {
	f.nacked = append(f.nacked, tag)
	f.done <- struct{}{}
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, _ bool) error {
	return f.Nack(tag, false, false)
}

func TestProcessValidMessage(t *testing.T) {
	handler := new(mockHandler)
	handler.On("Execute", mock.Anything, mock.MatchedBy(func(p LeadStatusChangedPayload) bool {
		return p.LeadID == "l1" && p.Status == "Converted"
	})).Return(nil)

	w := NewWorker(nil, handler)
	err := w.Process(context.Background(), []byte(`{"user_id":"agent-1","lead_id":"l1","status":"Converted"}`))

	assert.NoError(t, err)
	handler.AssertExpectations(t)
}

func TestProcessMalformedMessage(t *testing.T) {
	handler := new(mockHandler)
	w := NewWorker(nil, handler)

	err := w.Process(context.Background(), []byte(`{not json`))
	assert.ErrorIs(t, err, ErrMalformedMessage)

	err = w.Process(context.Background(), []byte(`{"user_id":"agent-1"}`))
	assert.ErrorIs(t, err, ErrMalformedMessage)

	handler.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestStartAcksAndNacks(t *testing.T) {
	handler := new(mockHandler)
	handler.On("Execute", mock.Anything, mock.MatchedBy(func(p LeadStatusChangedPayload) bool { return p.LeadID == "ok" })).Return(nil)
	handler.On("Execute", mock.Anything, mock.MatchedBy(func(p LeadStatusChangedPayload) bool { return p.LeadID == "bad" })).Return(errors.New("smtp down"))

	ack := &fakeAcknowledger{done: make(chan struct{}, 2)}
	deliveries := make(chan amqp.Delivery, 2)
	deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 1, Body: []byte(`{"user_id":"u","lead_id":"ok"}`)}
	deliveries <- amqp.Delivery{Acknowledger: ack, DeliveryTag: 2, Body: []byte(`{"user_id":"u","lead_id":"bad"}`)}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	w := NewWorker(&fakeConsumer{deliveries: deliveries}, handler)
	go func() { errCh <- w.Start(ctx, QueueName) }()

	for i := 0; i < 2; i++ {
		select {
		case <-ack.done:
		case <-time.After(2 * time.Second):
			t.Fatal("delivery not settled")
		}
	}
	cancel()

	require.NoError(t, <-errCh)
	assert.Equal(t, []uint64{1}, ack.acked)
	assert.Equal(t, []uint64{2}, ack.nacked)
}

func TestStartReturnsWhenChannelCloses(t *testing.T) {
	deliveries := make(chan amqp.Delivery)
	close(deliveries)

	w := NewWorker(&fakeConsumer{deliveries: deliveries}, new(mockHandler))
	err := w.Start(context.Background(), QueueName)

	assert.Error(t, err)
}
