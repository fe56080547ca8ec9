package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrMarkReadyCommandIsNotConstructed = errors.New(
		"MarkReadyCommand must be created via NewMarkReadyCommand constructor",
	)
)

// MarkReadyCommand marks a preparing order as ready for pickup.
// The preparation time is not required to have been set.
type MarkReadyCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkReadyCommand creates a command to mark the given order as ready.
func NewMarkReadyCommand(orderID kernel.UUID) (MarkReadyCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkReadyCommand{}, err
	}

	return MarkReadyCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkReadyCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to mark ready.
func (c MarkReadyCommand) OrderID() kernel.UUID {
	return c.orderID
}
