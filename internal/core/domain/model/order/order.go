package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a customer order tracked through fulfillment. It is the
// aggregate root that owns the order's lifecycle from intake to delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Customer name, item description, and delivery address are required
//   - Order details are immutable after creation; only status and the
//     write-once preparation time ever change
//   - Status transitions follow the single directed fulfillment path
//   - The preparation time is set at most once, only while Preparing, and
//     is never cleared by later transitions
//
// The struct uses private fields to ensure encapsulation; every mutation is
// validated and either commits fully or leaves the order unchanged.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerName identifies who placed the order
	customerName string

	// itemDescription is the ordered meal, as free text
	itemDescription string

	// deliveryAddress is the drop-off location, as free text
	deliveryAddress string

	// phone is the customer's contact number (optional)
	phone string

	// specialInstruction is a free-form note for the kitchen (optional)
	specialInstruction string

	// prepTimeMinutes is the advisory preparation time; write-once
	prepTimeMinutes *int

	// status is the current state in the fulfillment lifecycle
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Placed status with validation. This is the
// intake path: all details are supplied here and are immutable afterwards.
//
// Returns a validation error if the id is invalid or any required detail is
// empty. Phone and special instruction are optional.
func NewOrder(
	id kernel.UUID,
	customerName string,
	itemDescription string,
	deliveryAddress string,
	phone string,
	specialInstruction string,
) (*Order, error) {
	order := &Order{
		phone:              phone,
		specialInstruction: specialInstruction,
		status:             Placed,
		isConstructed:      true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
		order.setItemDescription(itemDescription),
		order.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence without running the
// intake transition. The status must be one of the five valid states and a
// stored preparation time must be positive; corrupt rows are rejected here
// instead of propagating into the domain.
func RestoreOrder(
	id kernel.UUID,
	customerName string,
	itemDescription string,
	deliveryAddress string,
	phone string,
	specialInstruction string,
	status Status,
	prepTimeMinutes *int,
) (*Order, error) {
	order, err := NewOrder(id, customerName, itemDescription, deliveryAddress, phone, specialInstruction)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	order.status = status

	if prepTimeMinutes != nil {
		if *prepTimeMinutes <= 0 {
			return nil, errs.NewValueIsInvalidErrorWithCause("prepTimeMinutes",
				fmt.Errorf("%d is not greater than 0", *prepTimeMinutes))
		}
		minutes := *prepTimeMinutes
		order.prepTimeMinutes = &minutes
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise. Call it when reconstructing
// orders from persistence to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the name of the customer who placed the order.
func (o *Order) CustomerName() string {
	return o.customerName
}

// ItemDescription returns the ordered meal description.
func (o *Order) ItemDescription() string {
	return o.itemDescription
}

// DeliveryAddress returns the drop-off address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Phone returns the customer's contact number, possibly empty.
func (o *Order) Phone() string {
	return o.phone
}

// SpecialInstruction returns the kitchen note, possibly empty.
func (o *Order) SpecialInstruction() string {
	return o.specialInstruction
}

// PrepTimeMinutes returns the advisory preparation time in minutes.
// Returns nil if it has never been set.
func (o *Order) PrepTimeMinutes() *int {
	if o.prepTimeMinutes == nil {
		return nil
	}
	minutes := *o.prepTimeMinutes
	return &minutes
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Receive moves the order from Placed to Preparing, acknowledging that the
// kitchen has taken it.
//
// Returns an InvalidTransitionError if the order is in any other status; the
// order is left unchanged on failure.
func (o *Order) Receive() error {
	newStatus, err := o.status.Receive()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// SetPrepTime records the advisory preparation time in minutes.
//
// This is a guarded mutation, not a state change:
//   - minutes must be a positive integer (InvalidArgument otherwise)
//   - the order must currently be Preparing (InvalidTransition otherwise)
//   - the field must not have been set before (AlreadySet otherwise)
//
// The AlreadySet rejection is distinct so a client can present the field as
// read-only rather than as a bad input. Once set, the value persists for the
// remainder of the order's life.
func (o *Order) SetPrepTime(minutes int) error {
	if minutes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("prepTimeMinutes",
			fmt.Errorf("%d is not greater than 0", minutes))
	}

	if err := o.status.ValidateSetPrepTime(); err != nil {
		return err
	}

	if o.prepTimeMinutes != nil {
		return errs.NewValueAlreadySetErrorWithCause("prepTimeMinutes",
			fmt.Errorf("prep time was set to %d", *o.prepTimeMinutes))
	}

	o.prepTimeMinutes = &minutes
	return nil
}

// MarkReady moves the order from Preparing to ReadyForPickup.
// The preparation time does not need to have been set.
//
// Returns an InvalidTransitionError if the order is in any other status.
func (o *Order) MarkReady() error {
	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Dispatch moves the order from ReadyForPickup to OutForDelivery.
//
// Returns an InvalidTransitionError if the order is in any other status.
func (o *Order) Dispatch() error {
	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ConfirmDelivered moves the order from OutForDelivery to Delivered, the
// terminal state.
//
// Returns an InvalidTransitionError if the order is in any other status,
// including an order that is already Delivered.
func (o *Order) ConfirmDelivered() error {
	newStatus, err := o.status.ConfirmDelivered()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerName validates and sets the customer name.
// This is a private method used only during construction.
func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	o.customerName = customerName
	return nil
}

// setItemDescription validates and sets the meal description.
// This is a private method used only during construction.
func (o *Order) setItemDescription(itemDescription string) error {
	if itemDescription == "" {
		return errs.NewValueIsRequiredError("itemDescription")
	}
	o.itemDescription = itemDescription
	return nil
}

// setDeliveryAddress validates and sets the drop-off address.
// This is a private method used only during construction.
func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = deliveryAddress
	return nil
}
