// Package kafka publishes fulfillment notifications to a Kafka topic.
// Notifications are advisory fan-out for the admin UI and downstream
// consumers; the order state transition has already committed by the time a
// message is written, so delivery failures are logged and swallowed by the
// callers.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"

	"fulfillment/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// notificationMessage is the wire format of one notification.
type notificationMessage struct {
	OrderID string `json:"order_id"`
	Event   string `json:"event"`
	Message string `json:"message"`
}

// NotificationPublisher writes order notifications to a Kafka topic,
// keyed by order id so all events of one order land on the same partition
// in order.
type NotificationPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewNotificationPublisher creates a publisher for the given brokers and topic.
func NewNotificationPublisher(brokers []string, topic string, logger *slog.Logger) *NotificationPublisher {
	return &NotificationPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireAll,
		},
		logger: logger,
	}
}

// Publish writes one notification. The error is returned for observability
// but command handlers treat publishing as best effort.
func (p *NotificationPublisher) Publish(ctx context.Context, notification ports.Notification) error {
	payload, err := json.Marshal(notificationMessage{
		OrderID: notification.OrderID.String(),
		Event:   string(notification.Event),
		Message: notification.Event.Message(),
	})
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(notification.OrderID.String()),
		Value: payload,
	})
	if err != nil {
		p.logger.Error("failed to publish notification",
			"order_id", notification.OrderID.String(),
			"event", string(notification.Event),
			"error", err)
		return err
	}

	p.logger.Info("notification published",
		"order_id", notification.OrderID.String(),
		"event", string(notification.Event))
	return nil
}

// Close releases the underlying Kafka writer.
func (p *NotificationPublisher) Close() error {
	return p.writer.Close()
}
