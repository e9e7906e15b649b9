package queue

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/bizgenie/bizgenie-api/internal/core/ports"
)

// AssignmentMailer delivers the notification once a message is consumed.
type AssignmentMailer interface {
	SendLeadAssigned(event ports.LeadAssignedEvent) error
}

// Worker consumes assignment events and hands them to the mailer. Malformed
// messages are rejected without requeue; delivery failures are requeued once
// by the broker's redelivery flag.
type Worker struct {
	ch     *amqp.Channel
	mailer AssignmentMailer
	log    zerolog.Logger
}

func NewWorker(ch *amqp.Channel, mailer AssignmentMailer, log zerolog.Logger) *Worker {
	return &Worker{ch: ch, mailer: mailer, log: log}
}

// Start consumes QueueName until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) error {
	msgs, err := w.ch.Consume(QueueName, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-msgs:
				if !ok {
					return
				}
				w.handle(d)
			}
		}
	}()

	w.log.Info().Str("queue", QueueName).Msg("notification worker started")
	return nil
}

func (w *Worker) handle(d amqp.Delivery) {
	var event ports.LeadAssignedEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		w.log.Error().Err(err).Msg("malformed assignment event, dropping")
		_ = d.Nack(false, false)
		return
	}

	if err := w.mailer.SendLeadAssigned(event); err != nil {
		w.log.Error().Err(err).Str("lead_id", event.LeadID).Str("agent_email", event.AgentEmail).Msg("notification delivery failed")
		_ = d.Nack(false, !d.Redelivered)
		return
	}

	w.log.Info().Str("lead_id", event.LeadID).Str("agent_id", event.AgentID).Msg("assignment notification sent")
	_ = d.Ack(false)
}
