package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// SetPrepTimeCommandHandler records the write-once preparation time on an
// order in Preparing status. This is a guarded mutation: the order's status
// is unchanged on success, and any rejection leaves the order untouched.
type SetPrepTimeCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.NotificationPublisher
}

// NewSetPrepTimeCommandHandler creates a handler for the set-prep-time
// operation.
func NewSetPrepTimeCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.NotificationPublisher,
) SetPrepTimeCommandHandler {
	return SetPrepTimeCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the set-prep-time command: load the order under a row
// lock, write the field once, persist, commit, then publish the advisory
// notification.
func (h *SetPrepTimeCommandHandler) Handle(ctx context.Context, cmd SetPrepTimeCommand) error {
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

	if err = aggregate.SetPrepTime(cmd.Minutes()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	// Advisory only; the field write has already committed.
	_ = h.publisher.Publish(ctx, ports.Notification{
		OrderID: aggregate.ID(),
		Event:   order.EventPrepTimeSet,
	})

	return nil
}
