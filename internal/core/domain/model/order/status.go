package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a single directed path to ensure orders
// follow the operational fulfillment workflow.
//
// State transitions:
//
//	Placed ──receive──> Preparing ──markReady──> ReadyForPickup
//	    ReadyForPickup ──dispatch──> OutForDelivery
//	    OutForDelivery ──confirmDelivered──> Delivered
//
// There are no reverse transitions, no skips, and no cancellation path.
// Setting the preparation time is a guarded mutation while Preparing, not a
// state change.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status when an order arrives from intake.
	// Orders in this status are waiting for the kitchen to receive them.
	Placed

	// Preparing indicates the kitchen has received the order and is
	// working on it. The preparation time may be set exactly once while
	// the order is in this status.
	Preparing

	// ReadyForPickup indicates the order is done and waiting for a rider.
	ReadyForPickup

	// OutForDelivery indicates the order has left with a rider.
	OutForDelivery

	// Delivered indicates the order reached the customer.
	// This is the final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string
// representations. All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Placed:         "Placed",
		Preparing:      "Preparing",
		ReadyForPickup: "ReadyForPickup",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values,
// supporting validation at the persistence boundary.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:         "Placed",
		Preparing:      "Preparing",
		ReadyForPickup: "ReadyForPickup",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
	}
}

// Validate checks if the Status value is one of the five valid states.
// Unknown (0) and any other values are invalid. Status values restored from
// external sources (database, API) must pass this check before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values, so it is safe to call on any
// Status, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString resolves a status name to its Status value.
// Unknown names are rejected at this boundary rather than propagated, so a
// loosely typed status string can never enter the domain.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError(s)
}

// Receive transitions the status to Preparing.
//
// Valid transitions:
//   - Placed -> Preparing
//
// Returns (0, InvalidTransitionError) from any other status.
func (s Status) Receive() (Status, error) {
	if s != Placed {
		return 0, errs.NewInvalidTransitionError("receive", s.String())
	}

	return Preparing, nil
}

// ValidateSetPrepTime checks that the preparation time may be written in the
// current status. Setting the preparation time is a self-transition: it never
// changes the status, but it is only legal while Preparing.
func (s Status) ValidateSetPrepTime() error {
	if s != Preparing {
		return errs.NewInvalidTransitionError("setPrepTime", s.String())
	}
	return nil
}

// MarkReady transitions the status to ReadyForPickup.
//
// Valid transitions:
//   - Preparing -> ReadyForPickup
//
// The preparation time is not required to have been set; it is advisory.
// Returns (0, InvalidTransitionError) from any other status.
func (s Status) MarkReady() (Status, error) {
	if s != Preparing {
		return 0, errs.NewInvalidTransitionError("markReady", s.String())
	}

	return ReadyForPickup, nil
}

// Dispatch transitions the status to OutForDelivery.
//
// Valid transitions:
//   - ReadyForPickup -> OutForDelivery
//
// Returns (0, InvalidTransitionError) from any other status.
func (s Status) Dispatch() (Status, error) {
	if s != ReadyForPickup {
		return 0, errs.NewInvalidTransitionError("dispatch", s.String())
	}

	return OutForDelivery, nil
}

// ConfirmDelivered transitions the status to Delivered.
//
// Valid transitions:
//   - OutForDelivery -> Delivered
//
// Delivered is the final state; confirming an already delivered order fails.
// Returns (0, InvalidTransitionError) from any other status.
func (s Status) ConfirmDelivered() (Status, error) {
	if s != OutForDelivery {
		return 0, errs.NewInvalidTransitionError("confirmDelivered", s.String())
	}

	return Delivered, nil
}
