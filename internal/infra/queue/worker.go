package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

var ErrMalformedMessage = errors.New("mensagem malformada")

// LeadEventHandler processa um evento de mudança de status.
type LeadEventHandler interface {
	Execute(ctx context.Context, payload LeadStatusChangedPayload) error
}

// Consumer é a parte do *amqp.Channel que o worker usa.
type Consumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

type Worker struct {
	Channel Consumer
	Handler LeadEventHandler
}

func NewWorker(ch Consumer, handler LeadEventHandler) *Worker {
	return &Worker{Channel: ch, Handler: handler}
}

// Start consome a fila até o ctx ser cancelado ou o canal fechar.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("falha ao registrar consumidor: %w", err)
	}

	log.Info().Str("queue", queueName).Msg("worker waiting for lead events")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("worker stopped")
			return nil
		case d, ok := <-msgs:
			if !ok {
				return errors.New("canal de entrega fechado")
			}
			if err := w.Process(ctx, d.Body); err != nil {
				log.Error().Err(err).Str("message_id", d.MessageId).Msg("lead event rejected")
				// sem requeue: vai para a DLQ
				d.Nack(false, false)
				continue
			}
			d.Ack(false)
		}
	}
}

// Process decodifica uma mensagem e repassa ao handler.
func (w *Worker) Process(ctx context.Context, body []byte) error {
	var payload LeadStatusChangedPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	if payload.UserID == "" || payload.LeadID == "" {
		return fmt.Errorf("%w: user_id e lead_id são obrigatórios", ErrMalformedMessage)
	}

	log.Debug().
		Str("lead_id", payload.LeadID).
		Str("from", payload.PreviousStatus).
		Str("to", payload.Status).
		Msg("processing lead event")

	return w.Handler.Execute(ctx, payload)
}
