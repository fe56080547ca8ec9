package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// ReceiveOrderCommandHandler moves a placed order into preparation.
//
// The order row is locked for the duration of the transaction, so a second
// concurrent receive against the same order observes the committed Preparing
// status and is rejected with an InvalidTransitionError.
//
// Example:
//
//	handler := NewReceiveOrderCommandHandler(uowFactory, publisher)
//	cmd, _ := NewReceiveOrderCommand(orderID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to receive order: %w", err)
//	}
type ReceiveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.NotificationPublisher
}

// NewReceiveOrderCommandHandler creates a handler for the receive operation.
func NewReceiveOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.NotificationPublisher,
) ReceiveOrderCommandHandler {
	return ReceiveOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the receive command: load the order under a row lock,
// apply the Placed -> Preparing transition, persist, commit, then publish
// the advisory notification.
func (h *ReceiveOrderCommandHandler) Handle(ctx context.Context, cmd ReceiveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.Receive(); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Advisory only; the transition has already committed.
	_ = h.publisher.Publish(ctx, ports.Notification{
		OrderID: aggregate.ID(),
		Event:   order.EventReceived,
	})

	return nil
}
