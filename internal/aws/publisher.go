package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// OrderCreatedEvent is the message published after an order is persisted.
// Field names match the API wire format.
type OrderCreatedEvent struct {
	OrderID    int64     `json:"pedidoId"`
	CustomerID int64     `json:"clienteId"`
	Total      float64   `json:"valorTotal"`
	CreatedAt  time.Time `json:"data"`
}

// Publisher wraps an SQS client and a queue URL.
type Publisher struct {
	SQS      SQSAPI
	QueueURL string
}

// NewPublisher returns a Publisher bound to a queue URL.
func NewPublisher(sqsClient SQSAPI, queueURL string) *Publisher {
	return &Publisher{
		SQS:      sqsClient,
		QueueURL: queueURL,
	}
}

// PublishOrderCreated sends the order-created event. correlationID is
// attached as a message attribute when present so the worker can tie its
// logs back to the originating request.
func (p *Publisher) PublishOrderCreated(ctx context.Context, ev OrderCreatedEvent, correlationID string) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	attrs := map[string]string{
		"pedido_id": strconv.FormatInt(ev.OrderID, 10),
	}
	if correlationID != "" {
		attrs["correlation_id"] = correlationID
	}

	msgAttrs := map[string]sqstypes.MessageAttributeValue{}
	for k, v := range attrs {
		msgAttrs[k] = sqstypes.MessageAttributeValue{
			DataType:    awsString("String"),
			StringValue: &v,
		}
	}

	input := &sqs.SendMessageInput{
		QueueUrl:          &p.QueueURL,
		MessageBody:       awsString(string(body)),
		MessageAttributes: msgAttrs,
	}

	if _, err := p.SQS.SendMessage(ctx, input); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// awsString helper
func awsString(s string) *string { return &s }
