package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// Notification describes a fulfillment event produced by a successful
// command. It is advisory: the state transition has already committed when a
// notification is published, and a publish failure never fails the command.
type Notification struct {
	OrderID kernel.UUID
	Event   order.EventKind
}

// NotificationPublisher delivers notifications to the sink consumed by the
// UI (toasts) and operational logging.
type NotificationPublisher interface {
	Publish(ctx context.Context, notification Notification) error
}
