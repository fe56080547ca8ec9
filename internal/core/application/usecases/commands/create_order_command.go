package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents an intake request for a new customer order.
// Encapsulates the order details captured at placement; all details are
// immutable once the order exists.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "Ella Reyes", "Veggie Bowl",
//	    "Brgy. Balele, Tanauan City", "0916-987-6543", "Less salt")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	customerName       string
	itemDescription    string
	deliveryAddress    string
	phone              string
	specialInstruction string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the order ID is valid and that customer name, item
// description, and delivery address are not empty. Phone and special
// instruction are optional free text.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerName string,
	itemDescription string,
	deliveryAddress string,
	phone string,
	specialInstruction string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		phone:              phone,
		specialInstruction: specialInstruction,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerName(customerName),
		orderCommand.setItemDescription(itemDescription),
		orderCommand.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerName returns the name of the customer placing the order.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// ItemDescription returns the ordered meal description.
func (c CreateOrderCommand) ItemDescription() string {
	return c.itemDescription
}

// DeliveryAddress returns the drop-off address.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Phone returns the customer's contact number, possibly empty.
func (c CreateOrderCommand) Phone() string {
	return c.phone
}

// SpecialInstruction returns the kitchen note, possibly empty.
func (c CreateOrderCommand) SpecialInstruction() string {
	return c.specialInstruction
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}

	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setItemDescription(itemDescription string) error {
	if itemDescription == "" {
		return errs.NewValueIsRequiredError("itemDescription")
	}

	c.itemDescription = itemDescription
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}

	c.deliveryAddress = deliveryAddress
	return nil
}
