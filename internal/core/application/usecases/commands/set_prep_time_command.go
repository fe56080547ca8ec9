package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrSetPrepTimeCommandIsNotConstructed = errors.New(
		"SetPrepTimeCommand must be created via NewSetPrepTimeCommand constructor",
	)
)

// SetPrepTimeCommand records the advisory preparation time for an order
// being prepared. The field is write-once: a second attempt is rejected with
// an AlreadySet error regardless of the argument.
type SetPrepTimeCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	minutes int

	guard guard.ConstructorGuard
}

// NewSetPrepTimeCommand creates a command to set the preparation time.
// Validates that the order ID is valid and minutes is a positive integer.
func NewSetPrepTimeCommand(orderID kernel.UUID, minutes int) (SetPrepTimeCommand, error) {
	prepTimeCommand := SetPrepTimeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		prepTimeCommand.setOrderID(orderID),
		prepTimeCommand.setMinutes(minutes),
	); err != nil {
		return SetPrepTimeCommand{}, err
	}

	return prepTimeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetPrepTimeCommandIsNotConstructed if validation fails.
func (c SetPrepTimeCommand) Validate() error {
	return c.guard.Validate(ErrSetPrepTimeCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c SetPrepTimeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Minutes returns the preparation time in minutes.
func (c SetPrepTimeCommand) Minutes() int {
	return c.minutes
}

func (c *SetPrepTimeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetPrepTimeCommand) setMinutes(minutes int) error {
	if minutes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("prepTimeMinutes",
			fmt.Errorf("%d is not greater than 0", minutes))
	}

	c.minutes = minutes
	return nil
}
