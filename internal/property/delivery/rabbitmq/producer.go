package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"property-listing/internal/property"
	"property-listing/pkg/log"
)

const publishTimeout = 10 * time.Second

// Channel is the subset of *amqp.Channel the producer needs.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type producer struct {
	ch       Channel
	exchange string
	l        log.Logger
}

var _ property.EventPublisher = (*producer)(nil)

// NewProducer publishes property events to exchange, routed by event type.
func NewProducer(l log.Logger, ch Channel, exchange string) *producer {
	return &producer{ch: ch, exchange: exchange, l: l}
}

// Publish sends event as a persistent JSON message.
func (p *producer) Publish(ctx context.Context, event property.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("producer: marshal %s: %w", event.Type, err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
		Type:         event.Type,
		Body:         body,
	}
	if err := p.ch.PublishWithContext(ctx, p.exchange, event.Type, false, false, msg); err != nil {
		return fmt.Errorf("producer: publish %s: %w", event.Type, err)
	}

	p.l.Debugf(ctx, "property/delivery/rabbitmq.Publish: %s %s", event.Type, event.PropertyID)
	return nil
}
