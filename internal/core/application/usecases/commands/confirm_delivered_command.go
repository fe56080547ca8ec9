package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrConfirmDeliveredCommandIsNotConstructed = errors.New(
		"ConfirmDeliveredCommand must be created via NewConfirmDeliveredCommand constructor",
	)
)

// ConfirmDeliveredCommand confirms that an out-for-delivery order reached
// the customer. Delivered is the terminal state.
type ConfirmDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmDeliveredCommand creates a command to confirm delivery of the
// given order.
func NewConfirmDeliveredCommand(orderID kernel.UUID) (ConfirmDeliveredCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ConfirmDeliveredCommand{}, err
	}

	return ConfirmDeliveredCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveredCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to confirm.
func (c ConfirmDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}
