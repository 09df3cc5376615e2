package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadStatusChangedPayload é publicado quando o status de tela de um lead muda.
type LeadStatusChangedPayload struct {
	EventID        string    `json:"event_id"`
	UserID         string    `json:"user_id"`
	LeadID         string    `json:"lead_id"`
	LeadName       string    `json:"lead_name"`
	CategoryName   string    `json:"category_name"`
	PreviousStatus string    `json:"previous_status"`
	Status         string    `json:"status"`
	OriginalStatus string    `json:"original_status"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// Publisher é a parte do *amqp.Channel que o producer usa.
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type RabbitMQProducer struct {
	Ch Publisher
}

func NewProducer(ch Publisher) *RabbitMQProducer {
	return &RabbitMQProducer{Ch: ch}
}

func (p *RabbitMQProducer) PublishLeadStatusChanged(ctx context.Context, payload LeadStatusChangedPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    payload.EventID,
			Timestamp:    payload.OccurredAt,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %w", err)
	}

	return nil
}
