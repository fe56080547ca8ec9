// Package order provides the domain entity and business logic for order
// fulfillment. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: the aggregate root owning order identity, details, the
//     write-once preparation time, and the fulfillment lifecycle
//   - Status: a state machine that enforces the single directed path
//     Placed -> Preparing -> ReadyForPickup -> OutForDelivery -> Delivered
//   - EventKind: advisory event descriptions emitted after successful
//     commands for the notification sink
//
// Key business rules:
//   - Orders must have a valid identifier, customer name, item description,
//     and delivery address; details are immutable after creation
//   - Status never skips a stage and never moves backwards; Delivered is
//     terminal and there is no cancellation path
//   - The preparation time is set exactly once, only while Preparing, and
//     persists unchanged through the rest of the lifecycle
//   - An order may be marked ready without a preparation time; the value is
//     advisory only
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are
// enforced. A rejected command always leaves the order unchanged.
package order
