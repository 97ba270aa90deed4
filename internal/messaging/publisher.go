package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"fnb-ordering/internal/logger"
	"fnb-ordering/internal/models"
)

// OrderCreatedEvent is published after an order transaction commits.
type OrderCreatedEvent struct {
	OrderID        int64                 `json:"order_id"`
	CustomerID     int64                 `json:"customer_id"`
	DeliveryOption models.DeliveryOption `json:"delivery_option"`
	TotalAmount    int64                 `json:"total_amount"`
	Status         models.OrderStatus    `json:"status"`
	Timestamp      time.Time             `json:"timestamp"`
}

// StatusChangedEvent is published after a delivery status update commits.
type StatusChangedEvent struct {
	OrderID   int64              `json:"order_id"`
	OldStatus models.OrderStatus `json:"old_status"`
	NewStatus models.OrderStatus `json:"new_status"`
	Timestamp time.Time          `json:"timestamp"`
}

// Publisher publishes order lifecycle events. A nil *Publisher is valid and
// drops events, so services need no configuration branches.
type Publisher struct {
	conn   *Connection
	logger *logger.Logger
}

// NewPublisher creates a publisher on the given connection.
func NewPublisher(conn *Connection, log *logger.Logger) *Publisher {
	return &Publisher{
		conn:   conn,
		logger: log,
	}
}

// PublishOrderCreated emits an order.created event.
func (p *Publisher) PublishOrderCreated(ctx context.Context, event OrderCreatedEvent) error {
	return p.publish(ctx, "order.created", event)
}

// PublishStatusChanged emits an order.status_changed event.
func (p *Publisher) PublishStatusChanged(ctx context.Context, event StatusChangedEvent) error {
	return p.publish(ctx, "order.status_changed", event)
}

func (p *Publisher) publish(ctx context.Context, routingKey string, message interface{}) error {
	if p == nil || p.conn == nil {
		return nil
	}

	if p.conn.IsClosed() {
		if err := p.conn.Reconnect(); err != nil {
			return fmt.Errorf("failed to reconnect: %w", err)
		}
	}

	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	publishing := amqp091.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: 2, // persistent
		Timestamp:    time.Now(),
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err = p.conn.Channel().PublishWithContext(
		ctx,
		OrderEventsExchange,
		routingKey,
		false, // mandatory
		false, // immediate
		publishing,
	)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", routingKey, err)
	}

	return nil
}
