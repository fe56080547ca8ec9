package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// ConfirmDeliveredCommandHandler moves an out-for-delivery order to the
// terminal Delivered status.
type ConfirmDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.NotificationPublisher
}

// NewConfirmDeliveredCommandHandler creates a handler for the
// confirm-delivered operation.
func NewConfirmDeliveredCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.NotificationPublisher,
) ConfirmDeliveredCommandHandler {
	return ConfirmDeliveredCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the confirm-delivered command under a row lock and
// publishes the advisory notification after commit.
func (h *ConfirmDeliveredCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveredCommand) error {
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

	if err = aggregate.ConfirmDelivered(); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.Notification{
		OrderID: aggregate.ID(),
		Event:   order.EventDelivered,
	})

	return nil
}
