package queue

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/funnelhq/leadfunnel/internal/entity"
	"github.com/funnelhq/leadfunnel/internal/infra/http/middleware"
)

// AccountFinder resolves the owning account so the worker knows where to
// send conversion mail.
type AccountFinder interface {
	FindByID(ctx context.Context, id int64) (*entity.Account, error)
}

type ConversionMailer interface {
	SendLeadConverted(to, company string) error
}

// Worker consumes stage-change events and notifies owners when a lead
// reaches purchase. Everything else is acked and counted only.
type Worker struct {
	Channel  *amqp.Channel
	Accounts AccountFinder
	Mailer   ConversionMailer
	Log      *zap.SugaredLogger
}

func NewWorker(ch *amqp.Channel, accounts AccountFinder, mailer ConversionMailer, log *zap.SugaredLogger) *Worker {
	return &Worker{
		Channel:  ch,
		Accounts: accounts,
		Mailer:   mailer,
		Log:      log,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		w.Log.Fatalw("worker", "status", "registering consumer", "err", err)
	}

	w.Log.Infow("worker", "status", "consuming", "queue", queueName)

	for d := range msgs {
		var payload LeadEventPayload
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			w.Log.Errorw("worker", "status", "malformed event", "err", err)
			// Poison message: reject without requeue so it lands in the DLQ.
			d.Nack(false, false)
			continue
		}

		if err := w.processEvent(context.Background(), payload); err != nil {
			w.Log.Errorw("worker", "status", "processing event", "event_id", payload.EventID, "err", err)
			d.Nack(false, false)
			continue
		}

		d.Ack(false)
	}
}

func (w *Worker) processEvent(ctx context.Context, payload LeadEventPayload) error {
	middleware.RecordStageChange(payload.FromStage, payload.ToStage)

	if payload.ToStage != string(entity.StagePurchase) {
		return nil
	}

	account, err := w.Accounts.FindByID(ctx, payload.AccountID)
	if err != nil {
		return err
	}

	if err := w.Mailer.SendLeadConverted(account.Username, payload.Company); err != nil {
		return err
	}

	middleware.RecordLeadConversion()
	w.Log.Infow("worker", "status", "conversion notified", "lead_id", payload.LeadID, "account_id", payload.AccountID)
	return nil
}
