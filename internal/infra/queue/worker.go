package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/agrimlabs/outreach-agent/internal/entity"
)

// LeadStatusUpdater is the slice of the lead repository the worker needs.
type LeadStatusUpdater interface {
	UpdateStatus(ctx context.Context, id, status string) error
}

// Worker consumes email-sent events and moves the corresponding lead out
// of "new". It runs best-effort: a failed update nacks to the DLQ, the
// email itself has already gone out.
type Worker struct {
	Channel *amqp.Channel
	Leads   LeadStatusUpdater
}

func NewWorker(ch *amqp.Channel, leads LeadStatusUpdater) *Worker {
	return &Worker{
		Channel: ch,
		Leads:   leads,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual is safer)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("Failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload EmailSentPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("[WORKER] Invalid JSON: %s", err)
				// Malformed message. Reject without requeue so it lands on the DLQ.
				d.Nack(false, false)
				continue
			}

			if err := w.processMessage(context.Background(), payload); err != nil {
				log.Printf("[WORKER] Status sync failed for %s: %s", payload.Email, err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker running, waiting on queue '%s'", queueName)
	<-forever
}

func (w *Worker) processMessage(ctx context.Context, payload EmailSentPayload) error {
	if payload.LeadID == "" {
		// Ad-hoc draft with no stored lead behind it. Ack and move on.
		log.Printf("[WORKER] Email to %s had no lead id, nothing to sync", payload.Email)
		return nil
	}

	if err := w.Leads.UpdateStatus(ctx, payload.LeadID, entity.StatusInProgress); err != nil {
		return err
	}

	log.Printf("[WORKER] Lead %s marked '%s' after send to %s", payload.LeadID, entity.StatusInProgress, payload.Email)
	return nil
}
