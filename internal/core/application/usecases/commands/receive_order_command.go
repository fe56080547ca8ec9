package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrReceiveOrderCommandIsNotConstructed = errors.New(
		"ReceiveOrderCommand must be created via NewReceiveOrderCommand constructor",
	)
)

// ReceiveOrderCommand represents the kitchen acknowledging a placed order.
// On success the order moves from Placed to Preparing.
type ReceiveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReceiveOrderCommand creates a command to receive the given order.
// Validates that the order ID is valid.
func NewReceiveOrderCommand(orderID kernel.UUID) (ReceiveOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ReceiveOrderCommand{}, err
	}

	return ReceiveOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReceiveOrderCommandIsNotConstructed if validation fails.
func (c ReceiveOrderCommand) Validate() error {
	return c.guard.Validate(ErrReceiveOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to receive.
func (c ReceiveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
