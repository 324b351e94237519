package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"

	"github.com/ltavares/go-cafeteria-api/internal/aws"
)

// Processor consumes order-created events and records order volume metrics
// for the back-office dashboards.
type Processor struct {
	metrics *aws.MetricsEmitter
	log     *logrus.Logger
}

// NewProcessor creates a worker processor.
func NewProcessor(metrics *aws.MetricsEmitter, log *logrus.Logger) *Processor {
	return &Processor{
		metrics: metrics,
		log:     log,
	}
}

// Handle receives an SQS batch event and processes each message. Returning
// an error makes the Lambda runtime retry; repeated failures land in the
// DLQ.
func (p *Processor) Handle(ctx context.Context, ev events.SQSEvent) error {
	p.log.WithField("messages", len(ev.Records)).Info("received SQS batch")
	for _, rec := range ev.Records {
		if err := p.processMessage(ctx, rec); err != nil {
			p.log.WithError(err).Error("worker error")
			return err
		}
	}
	return nil
}

func (p *Processor) processMessage(ctx context.Context, rec events.SQSMessage) error {
	var ev aws.OrderCreatedEvent
	if err := json.Unmarshal([]byte(rec.Body), &ev); err != nil {
		return fmt.Errorf("invalid message body: %w", err)
	}

	p.log.WithFields(logrus.Fields{
		"pedido_id":   ev.OrderID,
		"cliente_id":  ev.CustomerID,
		"valor_total": ev.Total,
	}).Info("order created")

	if err := p.metrics.RecordOrderCreated(ctx, ev.Total); err != nil {
		return fmt.Errorf("record order metrics: %w", err)
	}
	return nil
}
