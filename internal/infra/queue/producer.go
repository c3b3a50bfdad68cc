package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// EmailSentPayload is published after a successful delivery so the
// status-sync worker can move the lead out of "new". LeadID may be empty
// when the caller sent an ad-hoc draft not tied to a stored lead.
type EmailSentPayload struct {
	LeadID  string `json:"lead_id,omitempty"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishEmailSent(ctx context.Context, payload EmailSentPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email-sent payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publish email-sent event: %w", err)
	}

	return nil
}
