package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"property-listing/internal/property"
	"property-listing/pkg/log"
)

const (
	bindingKey = "property.*"
	prefetch   = 16
)

// EventHandler processes one decoded property event.
type EventHandler func(ctx context.Context, event property.Event) error

// Consumer reads property events from a durable queue bound to the exchange.
type Consumer struct {
	ch       *amqp.Channel
	exchange string
	queue    string
	handle   EventHandler
	l        log.Logger
}

// NewConsumer creates a Consumer. Call Run to start consuming.
func NewConsumer(l log.Logger, ch *amqp.Channel, exchange, queue string, handle EventHandler) *Consumer {
	return &Consumer{ch: ch, exchange: exchange, queue: queue, handle: handle, l: l}
}

// Run declares and binds the queue, then consumes until ctx is cancelled
// or the channel closes.
func (c *Consumer) Run(ctx context.Context) error {
	if err := c.ch.Qos(prefetch, 0, false); err != nil {
		return fmt.Errorf("consumer: qos: %w", err)
	}
	q, err := c.ch.QueueDeclare(c.queue, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consumer: declare queue %q: %w", c.queue, err)
	}
	if err := c.ch.QueueBind(q.Name, bindingKey, c.exchange, false, nil); err != nil {
		return fmt.Errorf("consumer: bind queue %q: %w", q.Name, err)
	}

	deliveries, err := c.ch.ConsumeWithContext(ctx, q.Name, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consumer: consume %q: %w", q.Name, err)
	}

	c.l.Infof(ctx, "property/delivery/rabbitmq.Consumer: consuming %s (%s)", q.Name, bindingKey)
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("consumer: delivery channel closed")
			}
			c.process(ctx, d)
		}
	}
}

func (c *Consumer) process(ctx context.Context, d amqp.Delivery) {
	event, err := decodeEvent(d.Body)
	if err != nil {
		c.l.Errorf(ctx, "property/delivery/rabbitmq.Consumer: drop malformed message: %v", err)
		_ = d.Nack(false, false)
		return
	}
	if err := c.handle(ctx, event); err != nil {
		c.l.Warnf(ctx, "property/delivery/rabbitmq.Consumer: handle %s %s: %v", event.Type, event.PropertyID, err)
		_ = d.Nack(false, !d.Redelivered)
		return
	}
	_ = d.Ack(false)
}

func decodeEvent(body []byte) (property.Event, error) {
	var event property.Event
	if err := json.Unmarshal(body, &event); err != nil {
		return property.Event{}, err
	}
	switch event.Type {
	case property.EventCreated, property.EventUpdated, property.EventDeleted:
	default:
		return property.Event{}, fmt.Errorf("unknown event type %q", event.Type)
	}
	if event.PropertyID == "" {
		return property.Event{}, fmt.Errorf("event %s without property_id", event.Type)
	}
	return event, nil
}
