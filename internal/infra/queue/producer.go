package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// LeadEventPayload is the wire format for stage-change events. FromStage is
// empty for the initial create.
type LeadEventPayload struct {
	EventID   string    `json:"event_id"`
	LeadID    int64     `json:"lead_id"`
	AccountID int64     `json:"account_id"`
	Company   string    `json:"company"`
	FromStage string    `json:"from_stage"`
	ToStage   string    `json:"to_stage"`
	ChangedAt time.Time `json:"changed_at"`
}

type LeadEventProducerInterface interface {
	PublishStageChange(ctx context.Context, payload LeadEventPayload) error
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

func (p *RabbitMQProducer) PublishStageChange(ctx context.Context, payload LeadEventPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling lead event: %w", err)
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
		return fmt.Errorf("publishing lead event: %w", err)
	}

	return nil
}
