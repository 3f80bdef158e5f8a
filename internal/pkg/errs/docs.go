// Package errs provides standardized error types for the GrabGo order core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes one error type per failure class:
//   - ValueIsRequiredError and ValueIsInvalidError: malformed or missing order input
//   - ObjectNotFoundError: an order id that does not exist
//   - ObjectAlreadyExistsError: an order id collision on insert
//   - UnauthorizedError: a customer attempting an administrator action
//   - PersistenceError: a failed read or write of the durable order slot
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// None of these errors is fatal. A PersistenceError in particular means the
// in-memory order collection is still authoritative.
package errs
