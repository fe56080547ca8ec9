// Package errs provides standardized error types for the fulfillment service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the four error kinds the command surface can reject with:
//   - ObjectNotFoundError: an order (or other object) does not exist
//   - ValueIsInvalidError / ValueIsRequiredError: malformed or missing input
//   - InvalidTransitionError: a command is not legal for the current status
//   - ValueAlreadySetError: a write-once field is being written again
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrInvalidTransition)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify errors by sentinel
//
// Callers distinguish rejection kinds with errors.Is against the sentinels,
// which keeps user-facing messaging decisions (HTTP status codes, toasts)
// out of the core.
package errs
